package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"Lookbook/app/services/lookgen/internal/analyzer"
	"Lookbook/app/services/lookgen/internal/knowledge"
	"Lookbook/app/services/lookgen/look"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	classifierModelNodeKey = "look_intent_model"
	classifierToolName     = "submit_look_signals"
)

// Classifier asks a chat model to read a look prompt and answer through a
// forced tool call with the same signals the keyword analyzer produces.
type Classifier struct {
	log      logx.Logger
	runnable compose.Runnable[string, *decision]
	tools    []*schema.ToolInfo
}

type decision struct {
	Styles    []string `json:"styles,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Seasons   []string `json:"seasons,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Budget    int64    `json:"budget,omitempty"`
}

func NewClassifier(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Classifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	tools := []*schema.ToolInfo{buildSignalsTool()}

	intentModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind look signals tool failed: %v", err)
		} else {
			intentModel = modelWithTools
		}
	}

	chain := compose.NewChain[string, *decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, prompt string) ([]*schema.Message, error) {
		var instructions strings.Builder
		instructions.WriteString("You are a fashion stylist assistant. Read the shopper's request and extract outfit signals. ")
		instructions.WriteString("Only use these style tags: ")
		instructions.WriteString(strings.Join(knowledge.Keys(), ", "))
		instructions.WriteString(". Colors are plain English color names, seasons are summer|winter|spring|autumn. ")
		instructions.WriteString("Budget is an integer amount or 0 when not mentioned. ")
		instructions.WriteString("Submit the result by calling the tool " + classifierToolName + " and write no other text.")

		return []*schema.Message{
			schema.SystemMessage(instructions.String()),
			schema.UserMessage(prompt),
		}, nil
	}))

	chain.AppendChatModel(intentModel, compose.WithNodeKey(classifierModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*decision, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := extractToolArguments(msg)
		if payload == "" {
			return nil, fmt.Errorf("look signals tool payload missing")
		}

		var d decision
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, fmt.Errorf("unmarshal look signals: %w", err)
		}
		return &d, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

// Analyze returns the model's signals, restricted to tags the knowledge base knows.
func (c *Classifier) Analyze(ctx context.Context, prompt string) (look.Signals, error) {
	if c == nil || c.runnable == nil {
		return look.Signals{}, fmt.Errorf("look classifier unavailable")
	}

	var opts []compose.Option
	if len(c.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(c.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(classifierModelNodeKey)
		opts = append(opts, opt)
	}

	d, err := c.runnable.Invoke(ctx, prompt, opts...)
	if err != nil {
		return look.Signals{}, err
	}
	return d.signals(), nil
}

func (d *decision) signals() look.Signals {
	s := look.Signals{
		Styles:    []string{},
		Colors:    known(d.Colors, analyzer.CanonicalColor),
		Seasons:   known(d.Seasons, analyzer.CanonicalSeason),
		Occasions: known(d.Occasions, analyzer.CanonicalOccasion),
	}
	for _, st := range normalize(d.Styles) {
		if _, ok := knowledge.Lookup(st); ok {
			s.Styles = append(s.Styles, st)
		}
	}
	if d.Budget > 0 {
		s.Budget = d.Budget
	}
	return s
}

// known keeps the words the vocabulary recognises, in canonical form.
func known(words []string, lookup func(string) (string, bool)) []string {
	out := []string{}
	for _, w := range normalize(words) {
		if c, ok := lookup(w); ok {
			out = appendUnique(out, c)
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func extractToolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, classifierToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func buildSignalsTool() *schema.ToolInfo {
	stringList := func(desc string) *schema.ParameterInfo {
		return &schema.ParameterInfo{
			Type:     schema.Array,
			Desc:     desc,
			ElemInfo: &schema.ParameterInfo{Type: schema.String},
		}
	}
	return &schema.ToolInfo{
		Name: classifierToolName,
		Desc: "Submit the outfit signals extracted from the shopper request",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"styles":    stringList("style tags from the allowed list"),
			"colors":    stringList("requested colors"),
			"seasons":   stringList("requested seasons"),
			"occasions": stringList("occasions such as work, date, party, beach, travel"),
			"budget": {
				Type: schema.Integer,
				Desc: "budget limit, 0 when unknown",
			},
		}),
	}
}
