package ast

import "testing"

// Ensure that all nodes implement the Node interface.
func TestNode(t *testing.T) {
	var a []Node
	a = append(a, &StyleSheet{}, &AtRule{}, &QualifiedRule{}, &Declaration{}, &SupportsRule{})
	a = append(a, &SimpleBlock{}, &Function{}, &Token{})
	a = append(a, Rules{}, Declarations{}, ComponentValues{})
	for _, n := range a {
		n.node()
	}
}

// Ensure that all rules implement the Rule interface.
func TestRule(t *testing.T) {
	a := []Rule{&AtRule{}, &QualifiedRule{}, &SupportsRule{}}
	for _, r := range a {
		r.rule()
	}
}

// Ensure that all component values implement the ComponentValue interface.
func TestComponentValue(t *testing.T) {
	a := []ComponentValue{&SimpleBlock{}, &Function{}, &Token{}}
	for _, v := range a {
		v.componentValue()
	}
}

// Ensure that all condition variants implement the Condition interface.
func TestCondition(t *testing.T) {
	a := []Condition{
		&NotCondition{}, &AndCondition{}, &OrCondition{},
		&DeclarationCondition{}, &SelectorCondition{}, &UnknownCondition{},
	}
	for _, c := range a {
		c.condition()
	}
}
