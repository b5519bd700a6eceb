package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwathan/lightningcss/ast"
	"github.com/adamwathan/lightningcss/property"
)

// Ensure conditions marshal to tagged records with kebab-case type tags.
func TestConditionMarshalJSON(t *testing.T) {
	var tests = []struct {
		in  ast.Condition
		out string
	}{
		{
			in:  decl("display", "flex"),
			out: `{"type":"declaration","propertyId":{"property":"display"},"value":"flex"}`,
		},
		{
			in: &ast.DeclarationCondition{
				Property: property.ID{Name: "transform", Prefix: property.WebKit | property.None},
				Value:    "none",
			},
			out: `{"type":"declaration","propertyId":{"property":"transform","vendorPrefix":["webkit","none"]},"value":"none"}`,
		},
		{
			in:  &ast.NotCondition{Inner: decl("a", "1")},
			out: `{"type":"not","value":{"type":"declaration","propertyId":{"property":"a"},"value":"1"}}`,
		},
		{
			in: &ast.AndCondition{Conditions: []ast.Condition{
				&ast.SelectorCondition{Selector: ":has(a)"},
				&ast.UnknownCondition{Raw: "(foo)"},
			}},
			out: `{"type":"and","value":[{"type":"selector","value":":has(a)"},{"type":"unknown","value":"(foo)"}]}`,
		},
		{
			in: &ast.OrCondition{Conditions: []ast.Condition{
				decl("a", "1"),
				decl("b", "2"),
			}},
			out: `{"type":"or","value":[{"type":"declaration","propertyId":{"property":"a"},"value":"1"},{"type":"declaration","propertyId":{"property":"b"},"value":"2"}]}`,
		},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, string(data))
	}
}

// Ensure the tagged form decodes back into a structurally equal tree.
func TestUnmarshalCondition(t *testing.T) {
	conditions := []ast.Condition{
		decl("display", "flex"),
		&ast.DeclarationCondition{
			Property: property.ID{Name: "transform", Prefix: property.WebKit | property.Moz | property.None},
			Value:    "none",
		},
		&ast.NotCondition{Inner: &ast.SelectorCondition{Selector: ":has(a)"}},
		&ast.OrCondition{Conditions: []ast.Condition{
			&ast.AndCondition{Conditions: []ast.Condition{decl("a", "1"), decl("b", "2")}},
			&ast.UnknownCondition{Raw: "(100px: 100px)"},
		}},
	}

	for _, in := range conditions {
		data, err := json.Marshal(in)
		require.NoError(t, err)

		out, err := ast.UnmarshalCondition(data)
		require.NoError(t, err)
		assert.True(t, in.Equal(out), "round trip of %s: got %s", in, out)
	}
}

// Ensure unknown type tags are rejected.
func TestUnmarshalCondition_BadTag(t *testing.T) {
	_, err := ast.UnmarshalCondition([]byte(`{"type":"media","value":"(x)"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown condition type "media"`)
}
