// Package tutor answers free-form Greek learning questions with a chat
// model and falls back to canned offline answers when the model cannot be
// reached.
package tutor
