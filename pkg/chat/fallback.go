package chat

import (
	"math/rand"
)

// Per-heritage greeting and fallback phrase sets. The fallback responses keep
// the conversation going when the generation backend is unavailable or
// returns a malformed payload; the greetings open a fresh session.

var greetings = map[string][]string{
	"hakka": {
		"Ah, my dear descendant... It warms this old heart to know our family line continues. In my time in Meizhou, we believed that ancestors never truly leave - we live on in the stories and memories of our children. What brings you to speak with me today?",
		"Little one, I can feel your presence across the generations. In the Hakka way, we say '祖德流芳' - the virtue of ancestors flows fragrant through time. Tell me, what do you wish to know about our family's journey?",
	},
	"hokkien": {
		"Ah, my child... From the mountains of Fujian, I send you my blessings. In our Hokkien tradition, we believe '落葉歸根' - fallen leaves return to their roots. You seeking to know your ancestors shows this truth. What questions burden your heart?",
		"My dear one, in my time in Quanzhou, we often said '飲水思源' - when drinking water, remember its source. You are the water, and I am but one of the many sources. What would you like to learn about our family's path?",
	},
	"cantonese": {
		"Ah, my precious grandchild... This old soul from Guangdong is pleased to speak with you. We Cantonese say '富不过三代' - wealth doesn't pass three generations, but wisdom and family bonds do. What wisdom do you seek from your ancestor?",
		"Little one, from the Pearl River Delta, I greet you with love. In Cantonese, we say '血濃於水' - blood is thicker than water. Our family connection transcends time itself. What stories would you like to hear?",
	},
}

const genericGreeting = "My dear child, I am honored to speak with you across the generations. What would you like to know about our family's journey?"

var fallbackResponses = map[string][]string{
	"hakka": {
		"Ah, my child, you remind me of the saying '客而家焉' - though we were guests in many lands, we made them our home. In Meizhou, our Hakka people learned to be resilient, to adapt while keeping our traditions. Perhaps this strength flows in your blood too, no?",
		"In my time, we Hakka believed in '刻苦耐劳' - enduring hardship with perseverance. Life was not easy, but we found joy in family, in the harvest, in simple moments. Tell me, what brings you joy in your time?",
	},
	"hokkien": {
		"Ah, you speak like the young ones in Quanzhou used to... In our Hokkien way, we say '爱拼才会赢' - only through struggle can we win. But remember, child, winning isn't always about material things. Sometimes it's about keeping family close, keeping traditions alive.",
		"My dear one, in Fujian we had a saying: '一家人不说两家话' - family doesn't speak like strangers. You coming to learn about your roots shows we are still one family, separated by time but connected by blood and spirit.",
	},
	"cantonese": {
		"Ah, such questions you ask! In Guangdong, we used to say '知足常乐' - contentment brings lasting happiness. Perhaps in your modern time, you have many things we couldn't imagine, but the heart's needs remain the same, no?",
		"Little one, your curiosity reminds me of the Pearl River - always flowing, always seeking. In Cantonese, we say '行行出状元' - every trade has its master. What path are you mastering in your life?",
	},
}

const genericFallback = "Your question touches my heart, dear child. In my time, we learned that life's greatest treasures are the bonds we share with family and the wisdom we pass down through generations."

// Greeting picks an opening line for the given ethnicity, falling back to a
// generic one for unrecognized heritage keys.
func Greeting(ethnicity string) string {
	if list, ok := greetings[ethnicity]; ok {
		return list[rand.Intn(len(list))]
	}
	return genericGreeting
}

// FallbackResponse picks a locally synthesized ancestor reply for the given
// ethnicity.
func FallbackResponse(ethnicity string) string {
	if list, ok := fallbackResponses[ethnicity]; ok {
		return list[rand.Intn(len(list))]
	}
	return genericFallback
}

// FallbackPhrases returns the fixed phrase set for an ethnicity. Used by
// tests to assert that a degraded reply came from the set.
func FallbackPhrases(ethnicity string) []string {
	list, ok := fallbackResponses[ethnicity]
	if !ok {
		return []string{genericFallback}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
