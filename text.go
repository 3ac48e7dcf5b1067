package main

// Shown when config.json has no about text or the GitHub profile has no bio.
var (
	AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work
	behind the scenes. Most of my projects start with a simple idea and turn into a chance to learn something new.`

	DefaultTagline = `Software developer`
)
