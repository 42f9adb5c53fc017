package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/Questifier/internal/utils"
	"github.com/josephgoksu/Questifier/models"
)

// FieldError reports one schema violation in a model response.
type FieldError struct {
	Path string
	Msg  string
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Msg
}

// DecodeQuest parses a model response and checks every required field's type.
// It performs no semantic checks (stat ranges, tone); those belong to the model.
func DecodeQuest(text string) (models.Quest, error) {
	if strings.TrimSpace(text) == "" {
		return models.Quest{}, newGenerationError(KindEmpty, "", "", nil)
	}

	raw, err := utils.ExtractAndParseJSON[map[string]any](text)
	if err != nil {
		return models.Quest{}, newGenerationError(KindMalformed, "", "", err)
	}
	if raw == nil {
		return models.Quest{}, newGenerationError(KindMalformed, "", "response is null", nil)
	}

	d := &questDecoder{}
	quest := models.Quest{
		QuestTitle:   d.str(raw, "", keyQuestTitle),
		Lore:         d.str(raw, "", keyLore),
		Rewards:      d.strList(raw, "", keyRewards),
		CallToAction: d.str(raw, "", keyCallToAction),
	}
	if monster, ok := d.object(raw, "", keyMonster); ok {
		quest.Monster = models.Monster{
			Name:        d.str(monster, keyMonster, keyMonsterName),
			Description: d.str(monster, keyMonster, keyMonsterDescription),
			HP:          d.number(monster, keyMonster, keyMonsterHP),
			Strength:    d.number(monster, keyMonster, keyMonsterStrength),
			Weakness:    d.str(monster, keyMonster, keyMonsterWeakness),
		}
	}

	if len(d.errs) > 0 {
		details := make([]string, 0, len(d.errs))
		for _, e := range d.errs {
			details = append(details, e.Error())
		}
		return models.Quest{}, newGenerationError(KindInvalid, "", strings.Join(details, "; "), errors.Join(d.errs...))
	}
	return quest, nil
}

// questDecoder collects field errors while pulling typed values out of raw JSON.
type questDecoder struct {
	errs []error
}

func (d *questDecoder) fail(parent, key, format string, args ...any) {
	path := key
	if parent != "" {
		path = parent + "." + key
	}
	d.errs = append(d.errs, &FieldError{Path: path, Msg: fmt.Sprintf(format, args...)})
}

func (d *questDecoder) lookup(obj map[string]any, parent, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		d.fail(parent, key, "required field missing")
		return nil, false
	}
	return v, true
}

func (d *questDecoder) str(obj map[string]any, parent, key string) string {
	v, ok := d.lookup(obj, parent, key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(parent, key, "expected string, got %s", kindOf(v))
		return ""
	}
	return s
}

func (d *questDecoder) number(obj map[string]any, parent, key string) float64 {
	v, ok := d.lookup(obj, parent, key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			d.fail(parent, key, "invalid number %q", n.String())
			return 0
		}
		return f
	case float64:
		return n
	default:
		d.fail(parent, key, "expected number, got %s", kindOf(v))
		return 0
	}
}

func (d *questDecoder) object(obj map[string]any, parent, key string) (map[string]any, bool) {
	v, ok := d.lookup(obj, parent, key)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(parent, key, "expected object, got %s", kindOf(v))
		return nil, false
	}
	return m, true
}

func (d *questDecoder) strList(obj map[string]any, parent, key string) []string {
	v, ok := d.lookup(obj, parent, key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(parent, key, "expected array, got %s", kindOf(v))
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			d.fail(parent, fmt.Sprintf("%s[%d]", key, i), "expected string, got %s", kindOf(item))
			continue
		}
		out = append(out, s)
	}
	return out
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
