/*
Package lightningcss implements parsing, transformation and printing of
CSS @supports rules. This is meant to be a low-level library for reading
feature-test conditions out of raw CSS text, rewriting them against a set
of browser targets, and serializing them back out.

This package can be used for building tools that minify @supports rules,
normalize their parenthesization, or fan vendor-prefixed declarations out
across the prefixes the configured browsers still require.

Basics

Processing occurs in three steps. First the scanner breaks a stream of
code points (runes) into CSS3 tokens. Second, the parser builds component
values and rules from those tokens; @supports at-rules are recognized and
their preludes parsed with the condition grammar into a condition tree.
Third, the printer serializes conditions and rules back to CSS, inserting
parentheses only where the nesting requires them.

Conditions

A condition is one of six forms. NotCondition negates a nested condition.
AndCondition and OrCondition hold two or more operands each; the grammar
never mixes the two operators inside one list, so "a and b or c" parses
as the conjunction with " or c" left for the caller. DeclarationCondition
tests a "property: value" pair and carries the property's vendor prefix
separately from its name. SelectorCondition wraps a selector() test.
UnknownCondition preserves any parenthesized text that matches no other
form, verbatim, so unrecognized conditions survive a round trip.

Targets

A DeclarationCondition whose property is known to the prefix table can be
resolved against a set of browser versions: the condition's prefix set is
replaced with every prefix some targeted browser still needs, plus the
unprefixed form. Printing then fans the declaration out into one
parenthesized test per prefix, joined with "or".
*/
package lightningcss
