package cli

import (
	"math/rand"
	"strconv"
	"strings"
)

// randInt is a test seam for challenge generation.
var randInt = func(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// challenge is the additive captcha shown before login. A wrong answer
// blocks the login attempt before any network call; the next attempt gets
// a fresh challenge.
type challenge struct {
	a, b int
}

func newChallenge() challenge {
	return challenge{a: randInt(1, 10), b: randInt(1, 10)}
}

func (c challenge) question() string {
	return "Captcha: what is " + strconv.Itoa(c.a) + " + " + strconv.Itoa(c.b) + "?"
}

func (c challenge) check(answer string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return false
	}
	return n == c.a+c.b
}
