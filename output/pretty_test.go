package output

import (
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
)

var reANSI = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return reANSI.ReplaceAllString(s, "")
}

func TestPrettyPrinter_PrintStatusLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(&buffer)
	response := &http.Response{
		Status:     "200 OK",
		StatusCode: 200,
		Proto:      "HTTP/1.1",
	}

	// Exercise
	if err := printer.PrintStatusLine(response); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if !strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("status line is not colored: %q", buffer.String())
	}
	expected := "HTTP/1.1 200 OK\n"
	if actual := stripANSI(buffer.String()); actual != expected {
		t.Errorf("unexpected output: expected=%s, actual=%s", expected, actual)
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(&buffer)
	header := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Foo":        []string{"hello", "world", "aaa"},
		"Date":         []string{"Tue, 12 Feb 2019 16:01:54 GMT"},
	}

	// Exercise
	if err := printer.PrintHeader(header); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Content-Type: application/json\n",
		"Date: Tue, 12 Feb 2019 16:01:54 GMT\n",
		"X-Foo: hello\n",
		"X-Foo: world\n",
		"X-Foo: aaa\n",
	}, "")
	if actual := stripANSI(buffer.String()); actual != expected {
		t.Errorf("unexpected output: expected=\n%s\n (len=%d)\nactual=\n%s\n (len=%d)",
			expected, len(expected), actual, len(actual))
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title    string
		body     string
		expected string
	}{
		{
			title: "Normal JSON",
			body:  `{"zzz": "hello ⚡", "aaa": [3.14, true, false, null], "123": {}, "": []}`,
			expected: strings.Join([]string{
				`{`,
				`    "zzz": "hello ⚡",`,
				`    "aaa": [`,
				`        3.14,`,
				`        true,`,
				`        false,`,
				`        null`,
				`    ],`,
				`    "123": {},`,
				`    "": []`,
				"}\n",
			}, "\n"),
		},
		{
			title: "Escaped",
			body:  `{"\"": "aaa\nbbb"}`,
			expected: strings.Join([]string{
				`{`,
				`    "\"": "aaa\nbbb"`,
				"}\n",
			}, "\n"),
		},
		{
			title: "Nested",
			body:  `[{"a":{"b":[1]}}]`,
			expected: strings.Join([]string{
				`[`,
				`    {`,
				`        "a": {`,
				`            "b": [`,
				`                1`,
				`            ]`,
				`        }`,
				`    }`,
				"]\n",
			}, "\n"),
		},
		{
			title:    "Scalar",
			body:     `"just a string"`,
			expected: "\"just a string\"\n",
		},
		{
			title:    "Body is empty",
			body:     "",
			expected: "",
		},
		{
			title:    "Body contains only whitespaces",
			body:     "    \n",
			expected: "    \n",
		},
		{
			title:    "Not a JSON 1",
			body:     "xyz",
			expected: "xyz",
		},
		{
			title:    "Not a JSON 2",
			body:     `[100 200]`,
			expected: `[100 200]`,
		},
		{
			title:    "Malformed JSON",
			body:     `{"hello": "world"`,
			expected: `{"hello": "world"`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := NewPrettyPrinter(&buffer)

			// Exercise
			if err := printer.PrintBody([]byte(tt.body)); err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if actual := stripANSI(buffer.String()); actual != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", tt.expected, actual)
			}
		})
	}
}

func TestPrettyPrinter_Palette(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(&buffer)
	au := aurora.NewAurora(true)

	// Exercise
	if err := printer.PrintHeader(http.Header{"X-Foo": []string{"bar"}}); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if err := printer.PrintBody([]byte(`{"a":1,"b":null}`)); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expectedFragments := []string{
		au.Colorize("X-Foo", aurora.BlackFg|aurora.BrightFg).String(),
		au.Colorize(":", aurora.BlackFg|aurora.BrightFg).String(),
		au.Colorize("bar", aurora.CyanFg).String(),
		au.Colorize(`"a"`, aurora.BlueFg).String(),
		au.Colorize("1", aurora.CyanFg).String(),
		au.Colorize("null", aurora.RedFg).String(),
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(buffer.String(), fragment) {
			t.Errorf("missing colored fragment %q in %q", fragment, buffer.String())
		}
	}
}

func TestPlainPrinter_PrintBody(t *testing.T) {
	var buffer strings.Builder
	printer := NewPlainPrinter(&buffer)

	if err := printer.PrintBody([]byte(`{"a": 1}`)); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if buffer.String() != `{"a": 1}` {
		t.Errorf("plain printer must not reformat the body: %s", buffer.String())
	}
}
