// Package form implements a generic conversational questionnaire engine.
// A form is data: an ordered list of steps with validators and prompts.
// The engine walks one session per chat through the steps, supports
// back-navigation and restart, and emits an ordered record when the last
// step is answered. It is transport-agnostic so it can be shared by all bots.
package form
