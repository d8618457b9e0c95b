// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chatbot

const (
	TopicSad         = "sad"
	TopicStressed    = "stressed"
	TopicAnxious     = "anxious"
	TopicMotivation  = "motivation"
	TopicSleep       = "sleep"
	TopicOverwhelmed = "overwhelmed"
	TopicDefault     = "default"
)

type topic struct {
	name     string
	keywords []string
}

// topicOrder is matched first to last
var topicOrder = []topic{
	{TopicOverwhelmed, []string{"overwhelm", "too much"}},
	{TopicAnxious, []string{"anxious", "anxiety", "panic", "nervous", "worried"}},
	{TopicStressed, []string{"stress", "pressure", "tense"}},
	{TopicSad, []string{"sad", "down", "depressed", "lonely", "upset"}},
	{TopicSleep, []string{"sleep", "insomnia", "tired", "awake"}},
	{TopicMotivation, []string{"motivat", "unmotivated", "lazy", "procrastinat"}},
}

var replies = map[string][]string{
	TopicSad: {
		"I'm sorry you're feeling sad. It's completely normal to have these feelings. Would you like to talk about what's making you feel this way?",
		"Sadness is a natural part of the human experience. Remember that it's okay to feel this way, and these feelings will pass. What usually helps you feel better?",
		"I hear that you're feeling sad. Sometimes it helps to acknowledge these feelings rather than push them away. Is there something specific that's troubling you today?",
	},
	TopicStressed: {
		"Stress can be really overwhelming. Let's try some deep breathing together - inhale for 4 counts, hold for 4, then exhale for 4. What's been causing you the most stress lately?",
		"I understand you're feeling stressed. It's important to take breaks and be kind to yourself. Have you tried any relaxation techniques that work for you?",
		"Stress is your body's way of responding to challenges. Let's work together to find some coping strategies. What's the biggest source of stress in your life right now?",
	},
	TopicAnxious: {
		"Anxiety can feel very intense, but you're not alone in this. Try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste.",
		"I understand anxiety can be overwhelming. Remember to breathe slowly and deeply. What situations tend to trigger your anxiety the most?",
		"Anxiety is treatable and manageable. You're taking a positive step by reaching out. Would you like to explore some coping strategies together?",
	},
	TopicMotivation: {
		"Everyone needs motivation sometimes, and it's great that you're seeking it. What's one small thing you could accomplish today that would make you feel proud?",
		"Motivation often comes from taking small steps forward. What's something you've been wanting to work on? Let's break it down into manageable pieces.",
		"You've already shown motivation by reaching out here. That's a positive step! What goals or dreams have been on your mind lately?",
	},
	TopicSleep: {
		"Sleep troubles can really affect our mental health. Have you tried establishing a bedtime routine? Things like avoiding screens before bed and keeping your room cool can help.",
		"Good sleep is crucial for mental wellness. What's your current bedtime routine like? Sometimes small changes can make a big difference.",
		"Sleep issues are very common. Creating a calm environment and practicing relaxation techniques before bed can help. What time do you usually try to go to sleep?",
	},
	TopicOverwhelmed: {
		"Feeling overwhelmed is a sign that you're dealing with a lot right now. Let's try to break things down into smaller, more manageable pieces. What's feeling most overwhelming?",
		"When everything feels like too much, it helps to focus on just one thing at a time. What's the most important thing you need to handle today?",
		"Being overwhelmed is exhausting. Remember that you don't have to handle everything at once. What support systems do you have available?",
	},
	TopicDefault: {
		"Thank you for sharing that with me. I'm here to listen and support you. Can you tell me more about how you're feeling?",
		"I appreciate you opening up. Your feelings are valid, and it's important to acknowledge them. What would be most helpful for you right now?",
		"I'm glad you reached out. Sometimes just talking about our feelings can be really helpful. What's been on your mind lately?",
	},
}

// Replies returns the canned replies for a topic
func Replies(topic string) []string {
	return replies[topic]
}
