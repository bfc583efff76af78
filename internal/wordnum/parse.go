// Package wordnum converts English cardinal number words into integers and
// resolves the quantity that precedes a currency term.
package wordnum

import (
	"strings"

	"github.com/SscSPs/moneyparse/internal/apperrors"
)

type wordClass int

const (
	classStart wordClass = iota
	classArticle
	classOnes
	classTeen
	classTens
	classHundred
	classScale
	classAnd
)

type word struct {
	class wordClass
	value int64
}

// vocabulary maps each supported English cardinal word to its class and value.
var vocabulary = map[string]word{
	"a":         {classArticle, 1},
	"an":        {classArticle, 1},
	"one":       {classOnes, 1},
	"two":       {classOnes, 2},
	"three":     {classOnes, 3},
	"four":      {classOnes, 4},
	"five":      {classOnes, 5},
	"six":       {classOnes, 6},
	"seven":     {classOnes, 7},
	"eight":     {classOnes, 8},
	"nine":      {classOnes, 9},
	"ten":       {classTeen, 10},
	"eleven":    {classTeen, 11},
	"twelve":    {classTeen, 12},
	"thirteen":  {classTeen, 13},
	"fourteen":  {classTeen, 14},
	"fifteen":   {classTeen, 15},
	"sixteen":   {classTeen, 16},
	"seventeen": {classTeen, 17},
	"eighteen":  {classTeen, 18},
	"nineteen":  {classTeen, 19},
	"twenty":    {classTens, 20},
	"thirty":    {classTens, 30},
	"forty":     {classTens, 40},
	"fifty":     {classTens, 50},
	"sixty":     {classTens, 60},
	"seventy":   {classTens, 70},
	"eighty":    {classTens, 80},
	"ninety":    {classTens, 90},
	"hundred":   {classHundred, 100},
	"thousand":  {classScale, 1_000},
	"million":   {classScale, 1_000_000},
	"billion":   {classScale, 1_000_000_000},
	"trillion":  {classScale, 1_000_000_000_000},
	"and":       {classAnd, 0},
}

const wordZero = "zero"

// allowedAfter lists, per word class, the classes that may directly precede it.
var allowedAfter = map[wordClass][]wordClass{
	classArticle: {classStart},
	classOnes:    {classStart, classTens, classHundred, classScale, classAnd},
	classTeen:    {classStart, classHundred, classScale, classAnd},
	classTens:    {classStart, classHundred, classScale, classAnd},
	classHundred: {classStart, classArticle, classOnes, classTeen, classTens},
	classScale:   {classStart, classArticle, classOnes, classTeen, classTens, classHundred},
	classAnd:     {classHundred, classScale},
}

// IsNumberWord reports whether tok belongs to the cardinal vocabulary.
// Articles and "and" are not number words on their own. A hyphenated token
// such as "twenty-five" counts when every part does.
func IsNumberWord(tok string) bool {
	tok = strings.ToLower(tok)
	if strings.Contains(tok, "-") {
		for _, part := range strings.Split(tok, "-") {
			if part == "" || !IsNumberWord(part) {
				return false
			}
		}
		return true
	}
	if tok == wordZero {
		return true
	}
	w, ok := vocabulary[tok]
	return ok && w.class != classArticle && w.class != classAnd
}

// Parse converts English cardinal text such as "a hundred", "twenty-five" or
// "one thousand two hundred and five" into its integer value.
func Parse(s string) (int64, error) {
	input := s
	s = strings.ToLower(strings.TrimSpace(s))
	tokens := strings.Fields(strings.ReplaceAll(s, "-", " "))

	if len(tokens) == 0 {
		return 0, apperrors.NewParseError(apperrors.ErrInput, input, "Empty number text")
	}

	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		current   int64 // sum of flushed scale groups
		group     int64 // 0-999 accumulator for the group under construction
		lastScale int64
		prev      = classStart
	)

	for _, tok := range tokens {
		w, ok := vocabulary[tok]
		if !ok {
			return 0, apperrors.NewParseError(apperrors.ErrFormat, input, "Unrecognized number word: %q", tok)
		}
		if !follows(w.class, prev) {
			return 0, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid number sequence near %q", tok)
		}

		switch w.class {
		case classArticle, classOnes, classTeen, classTens:
			group += w.value
		case classHundred:
			if group == 0 {
				group = 1
			}
			if group >= 100 {
				return 0, apperrors.NewParseError(apperrors.ErrFormat, input, "Invalid number sequence near %q", tok)
			}
			group *= 100
		case classScale:
			if lastScale != 0 && w.value >= lastScale {
				return 0, apperrors.NewParseError(apperrors.ErrFormat, input, "Scale %q out of order", tok)
			}
			if group == 0 {
				group = 1
			}
			current += group * w.value
			group = 0
			lastScale = w.value
		case classAnd:
		}
		prev = w.class
	}

	if prev == classAnd {
		return 0, apperrors.NewParseError(apperrors.ErrFormat, input, "Number text cannot end with %q", "and")
	}

	return current + group, nil
}

func follows(class, prev wordClass) bool {
	for _, c := range allowedAfter[class] {
		if c == prev {
			return true
		}
	}
	return false
}
