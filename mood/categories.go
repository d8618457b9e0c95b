// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mood

import (
	"strings"

	"github.com/danielhkuo/neurocare/models"
)

// Category is one fixed mood bucket
type Category struct {
	Name        string // lower-case key, e.g. "calm"
	Emoji       string
	Confidence  int
	Keywords    []string
	Suggestions []string
}

// Label is the capitalized name stored on entries
func (c Category) Label() string {
	if c.Name == "" {
		return ""
	}
	return strings.ToUpper(c.Name[:1]) + c.Name[1:]
}

// categories in match priority order; neutral is the fallback
var categories = []Category{
	{
		Name:       models.MoodHappy,
		Emoji:      "😊",
		Confidence: 85,
		Keywords:   []string{"happy", "joy", "great", "wonderful", "amazing"},
		Suggestions: []string{
			"Your positive energy is wonderful! Consider sharing this joy with someone you care about.",
			"Great to see you feeling happy! This is a perfect time to practice gratitude for what's going well.",
			"Your happiness is contagious! Maybe try a new activity or hobby while you're feeling so positive.",
		},
	},
	{
		Name:       models.MoodSad,
		Emoji:      "😢",
		Confidence: 80,
		Keywords:   []string{"sad", "down", "depressed", "upset"},
		Suggestions: []string{
			"It's okay to feel sad sometimes. Consider reaching out to a friend or practicing gentle self-care.",
			"Sadness is a natural emotion. Try some deep breathing exercises or a short walk outside.",
			"Remember that this feeling will pass. Consider journaling or listening to calming music.",
		},
	},
	{
		Name:       models.MoodAnxious,
		Emoji:      "😰",
		Confidence: 90,
		Keywords:   []string{"anxious", "worried", "nervous", "panic"},
		Suggestions: []string{
			"Anxiety can be overwhelming. Try the 4-7-8 breathing technique: inhale for 4, hold for 7, exhale for 8.",
			"When anxious, grounding techniques can help. Name 5 things you can see, 4 you can touch, 3 you can hear.",
			"Consider breaking down what's making you anxious into smaller, manageable steps.",
		},
	},
	{
		Name:       models.MoodCalm,
		Emoji:      "😌",
		Confidence: 85,
		Keywords:   []string{"calm", "peaceful", "relaxed", "serene"},
		Suggestions: []string{
			"This peaceful state is precious. Consider practicing mindfulness to maintain this calm feeling.",
			"Your calmness is a strength. This might be a good time for reflection or meditation.",
			"Enjoy this tranquil moment. Consider what helped you achieve this state of calm.",
		},
	},
	{
		Name:       models.MoodExcited,
		Emoji:      "🤩",
		Confidence: 88,
		Keywords:   []string{"excited", "thrilled", "energetic"},
		Suggestions: []string{
			"Your excitement is energizing! Channel this positive energy into something creative or productive.",
			"Excitement is wonderful! Consider sharing your enthusiasm with others or starting a new project.",
			"This high energy is great! Make sure to also take moments to breathe and stay grounded.",
		},
	},
	{
		Name:       models.MoodStressed,
		Emoji:      "😤",
		Confidence: 85,
		Keywords:   []string{"stressed", "overwhelmed", "pressure"},
		Suggestions: []string{
			"Stress is challenging. Try progressive muscle relaxation or take a few minutes to step away from stressors.",
			"When stressed, prioritizing tasks can help. Focus on what's most important and let go of what you can't control.",
			"Consider taking short breaks throughout your day and practicing deep breathing exercises.",
		},
	},
}

var neutral = Category{
	Name:       models.MoodNeutral,
	Emoji:      "😐",
	Confidence: 70,
	Suggestions: []string{
		"Neutral feelings are completely normal. This might be a good time for self-reflection or trying something new.",
		"Sometimes feeling neutral gives us space to appreciate the small things around us.",
		"This balanced state can be peaceful. Consider what small thing might bring you a bit of joy today.",
	},
}

// Categories returns every category in priority order, neutral last
func Categories() []Category {
	out := make([]Category, 0, len(categories)+1)
	out = append(out, categories...)
	return append(out, neutral)
}

// Lookup finds a category by name, case-insensitively
func Lookup(name string) (Category, bool) {
	name = strings.ToLower(name)
	for _, c := range Categories() {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
