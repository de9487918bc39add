package intent

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestDecisionSignalsKeepsKnownVocabulary(t *testing.T) {
	d := &decision{
		Styles:    []string{" Elegant ", "space-cowboy", "elegant"},
		Colors:    []string{"Black", "", "ultraviolet-ish"},
		Seasons:   []string{"Winter", "monsoon", "fall"},
		Occasions: []string{"work", "Office", "moon landing", "Beach"},
		Budget:    5000,
	}

	s := d.signals()
	assert.Equal(t, []string{"elegant"}, s.Styles)
	assert.Equal(t, []string{"black"}, s.Colors)
	assert.Equal(t, []string{"winter", "autumn"}, s.Seasons)
	assert.Equal(t, []string{"work", "beach"}, s.Occasions)
	assert.Equal(t, int64(5000), s.Budget)
}

func TestExtractToolArguments(t *testing.T) {
	msg := &schema.Message{
		ToolCalls: []schema.ToolCall{
			{Function: schema.FunctionCall{Name: "other", Arguments: "{}"}},
			{Function: schema.FunctionCall{Name: classifierToolName, Arguments: ` {"styles":["casual"]} `}},
		},
	}
	assert.Equal(t, `{"styles":["casual"]}`, extractToolArguments(msg))
	assert.Empty(t, extractToolArguments(&schema.Message{}))
}

func TestNewClassifierRequiresModel(t *testing.T) {
	_, err := NewClassifier(context.Background(), nil, nil)
	assert.Error(t, err)
}
