package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/titania-lang/titania/sexy"
)

func TestSexyAllTests(t *testing.T) {
	testFiles, err := filepath.Glob("test/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(testFiles) > 0)

	for _, testFile := range testFiles {
		fileName := filepath.Base(testFile)
		testName := strings.TrimSuffix(fileName, ".md")

		t.Run(testName, func(t *testing.T) {
			content, err := os.ReadFile(testFile)
			be.Err(t, err, nil)

			testCases, err := sexy.ExtractTestCases(string(content))
			be.Err(t, err, nil)

			for _, tc := range testCases {
				t.Run(tc.Name, func(t *testing.T) {
					if tc.InputType != sexy.InputTypeTitaniaModule {
						t.Fatalf("Unknown input type: %s", tc.InputType)
					}
					for i, assertion := range tc.Assertions {
						t.Run("assertion_"+string(rune('a'+i)), func(t *testing.T) {
							runAssertion(t, tc.Input, assertion)
						})
					}
				})
			}
		})
	}
}

// runAssertion checks one assertion against the pipeline stage it names.
func runAssertion(t *testing.T, input string, assertion sexy.Assertion) {
	switch assertion.Type {
	case sexy.AssertionTypeAST:
		module, err := Parse(input)
		be.Err(t, err, nil)
		assertSexyEqual(t, ToSExpr(module), assertion.ParsedSexy)

	case sexy.AssertionTypeWatAST:
		res, err := CompileSource(input, Options{})
		be.Err(t, err, nil)
		assertSexyEqual(t, WatToSExpr(res.Wat), assertion.ParsedSexy)

	case sexy.AssertionTypeWat:
		res, err := CompileSource(input, Options{})
		be.Err(t, err, nil)
		be.Equal(t, strings.TrimRight(res.Code, "\n"), assertion.Content)

	case sexy.AssertionTypeCompileError:
		_, err := CompileSource(input, Options{})
		be.Err(t, err)
		be.Equal(t, err.Error(), assertion.Content)

	default:
		t.Fatalf("Unknown assertion type: %s", assertion.Type)
	}
}

// assertSexyEqual compares the rendered form of a pipeline value with the
// expected pattern after normalizing both through the s-expression reader.
func assertSexyEqual(t *testing.T, got string, want *sexy.Node) {
	t.Helper()
	parsed, err := sexy.Parse(got)
	if err != nil {
		t.Fatalf("pipeline produced an unreadable s-expression %q: %v", got, err)
	}
	if !sexy.Equal(parsed, want) {
		t.Errorf("s-expression mismatch\n got: %s\nwant: %s", parsed.String(), want.String())
	}
}
