// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mood classifies free-text journal input into fixed mood categories.

# Classification

Detection is an ordered substring test on the lower-cased text. The first
category with a matching keyword wins:

	happy > sad > anxious > calm > excited > stressed > neutral

Each category carries a fixed emoji, a fixed confidence, and three
suggestion templates:

	c := mood.NewClassifier()
	entry := c.Classify("I feel anxious about my exam")
	// entry.Mood == "Anxious", entry.Emoji == "😰", entry.Confidence == 90

# Randomness

The suggestion is picked through the Rand interface. NewClassifier uses the
global math/rand/v2 source; tests set a fixed or seeded Rand:

	c.Rand = mood.NewSeededRand(42)

Now and NewID are injectable the same way. Entry IDs default to UUIDv7.
*/
package mood
