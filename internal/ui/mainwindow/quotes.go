package mainwindow

import "math/rand"

var quotes = []string{
	"Focus is the gateway to thinking clearly.",
	"One focused hour beats ten distracted days.",
	"Your tree grows with every moment of focus.",
	"Deep work is the superpower of the 21st century.",
	"Concentration is the secret of strength.",
	"The successful warrior is the average person with laser-like focus.",
	"Focus on being productive instead of busy.",
	"Where focus goes, energy flows.",
	"Your attention is the most valuable resource you have.",
	"Small daily improvements over time lead to stunning results.",
}

func randomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}
