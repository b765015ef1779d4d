package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall",
	"Grand", "Ultimate", "Prime", "Alpha", "Growling", "Leaping", "Charging",
	"Bouncing", "Lucky", "Daring", "Silent", "Clever",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion",
	"Tiger", "Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Snake",
	"Lizard", "Chipmunk", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino",
	"Reindeer", "Deer", "Panda", "Mongoose", "Cobra", "Falcon",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
