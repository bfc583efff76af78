package domain_test

import (
	"testing"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPatternKind_IsValid(t *testing.T) {
	for _, k := range domain.PatternKinds {
		assert.True(t, k.IsValid(), string(k))
	}
	assert.False(t, domain.PatternKind("roman_numeral").IsValid())
	assert.False(t, domain.PatternKind("").IsValid())
}

func TestPatternKinds_PhraseFormsComeFirst(t *testing.T) {
	assert.Equal(t, domain.PatternContextualPhrase, domain.PatternKinds[0])
	assert.Equal(t, domain.PatternPlainNumber, domain.PatternKinds[len(domain.PatternKinds)-1])
}
