package heritage

// EthnicityOption is one selectable heritage background with the regions that
// make sense for it.
type EthnicityOption struct {
	Slug    string
	Label   string
	Regions []string
}

func (o EthnicityOption) HasRegion(region string) bool {
	for _, r := range o.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// TimePeriodOption is one selectable historical window.
type TimePeriodOption struct {
	Value string
	Label string
}

// RelationshipLabel carries the dialect-specific renderings of a relationship
// term, used by selection UIs.
type RelationshipLabel struct {
	Chars     string
	Mandarin  string
	Cantonese string
	Hokkien   string
	Hakka     string
}

var Ethnicities = []EthnicityOption{
	{Slug: "hakka", Label: "Hakka (客家, Kèjiā)", Regions: []string{"Meizhou", "Guangdong", "Fujian", "Jiangxi"}},
	{Slug: "hokkien", Label: "Hokkien (福建, Fújiàn)", Regions: []string{"Quanzhou", "Xiamen", "Zhangzhou", "Taiwan"}},
	{Slug: "cantonese", Label: "Cantonese (廣東, Guǎngdōng)", Regions: []string{"Guangzhou", "Taishan", "Hong Kong", "Macau"}},
}

var TimePeriods = []TimePeriodOption{
	{Value: "1890s-1910s", Label: "1890s-1910s (Late Qing Dynasty)"},
	{Value: "1920s-1940s", Label: "1920s-1940s (Republican Era)"},
	{Value: "1950s-1970s", Label: "1950s-1970s (Early PRC/Migration)"},
}

var RelationshipLabels = map[string]RelationshipLabel{
	"great-grandfather": {
		Chars:     "曾祖父",
		Mandarin:  "zēng zǔ fù",
		Cantonese: "cang¹ zou² fu⁶",
		Hokkien:   "cheng-chó͘-pē",
		Hakka:     "chan¹-zu²-pu³",
	},
	"great-grandmother": {
		Chars:     "曾祖母",
		Mandarin:  "zēng zǔ mǔ",
		Cantonese: "cang¹ zou² mou²",
		Hokkien:   "cheng-chó͘-bó͘",
		Hakka:     "chan¹-zu²-mu²",
	},
	"grandfather": {
		Chars:     "祖父",
		Mandarin:  "zǔ fù",
		Cantonese: "zou² fu⁶",
		Hokkien:   "chú-pē",
		Hakka:     "zu²-pu³",
	},
	"grandmother": {
		Chars:     "祖母",
		Mandarin:  "zǔ mǔ",
		Cantonese: "zou² mou²",
		Hokkien:   "chú-bó͘",
		Hakka:     "zu²-mu²",
	},
}

func EthnicityBySlug(slug string) (EthnicityOption, bool) {
	for _, o := range Ethnicities {
		if o.Slug == slug {
			return o, true
		}
	}
	return EthnicityOption{}, false
}

func TimePeriodByValue(value string) (TimePeriodOption, bool) {
	for _, o := range TimePeriods {
		if o.Value == value {
			return o, true
		}
	}
	return TimePeriodOption{}, false
}
