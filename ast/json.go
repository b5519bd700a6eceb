package ast

import (
	"encoding/json"
	"fmt"

	"github.com/adamwathan/lightningcss/property"
)

// Conditions serialize as tagged records with a kebab-case "type"
// discriminator, suitable for JSON interchange:
//
//	{"type":"not","value":{...}}
//	{"type":"and","value":[{...},{...}]}
//	{"type":"declaration","propertyId":{"property":"display"},"value":"flex"}

func (c *NotCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string        `json:"type"`
		Value jsonCondition `json:"value"`
	}{"not", jsonCondition{c.Inner}})
}

func (c *AndCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string          `json:"type"`
		Value []jsonCondition `json:"value"`
	}{"and", wrapConditions(c.Conditions)})
}

func (c *OrCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string          `json:"type"`
		Value []jsonCondition `json:"value"`
	}{"or", wrapConditions(c.Conditions)})
}

func (c *DeclarationCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		PropertyID property.ID `json:"propertyId"`
		Value      string      `json:"value"`
	}{"declaration", c.Property, c.Value})
}

func (c *SelectorCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"selector", c.Selector})
}

func (c *UnknownCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"unknown", c.Raw})
}

// jsonCondition wraps a Condition so nested interface values marshal
// through the variant implementations above.
type jsonCondition struct {
	Condition
}

func (w jsonCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Condition)
}

func (w *jsonCondition) UnmarshalJSON(data []byte) error {
	c, err := UnmarshalCondition(data)
	if err != nil {
		return err
	}
	w.Condition = c
	return nil
}

func wrapConditions(items []Condition) []jsonCondition {
	a := make([]jsonCondition, len(items))
	for i, item := range items {
		a[i] = jsonCondition{item}
	}
	return a
}

// UnmarshalCondition decodes the tagged JSON form back into a condition
// tree. The tag-to-variant mapping round-trips exactly.
func UnmarshalCondition(data []byte) (Condition, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case "not":
		var rec struct {
			Value jsonCondition `json:"value"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		return &NotCondition{Inner: rec.Value.Condition}, nil
	case "and", "or":
		var rec struct {
			Value []jsonCondition `json:"value"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		items := make([]Condition, len(rec.Value))
		for i, w := range rec.Value {
			items[i] = w.Condition
		}
		if tag.Type == "and" {
			return &AndCondition{Conditions: items}, nil
		}
		return &OrCondition{Conditions: items}, nil
	case "declaration":
		var rec struct {
			PropertyID property.ID `json:"propertyId"`
			Value      string      `json:"value"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		return &DeclarationCondition{Property: rec.PropertyID, Value: rec.Value}, nil
	case "selector":
		var rec struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		return &SelectorCondition{Selector: rec.Value}, nil
	case "unknown":
		var rec struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
		return &UnknownCondition{Raw: rec.Value}, nil
	}
	return nil, fmt.Errorf("unknown condition type %q", tag.Type)
}
