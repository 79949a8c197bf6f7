package tutor

import (
  "errors"
  "strings"
  "testing"
)

func TestExtractProblem(t *testing.T) {
  cases := []struct {
    message  string
    want     string
    ok       bool
  }{
    {"what is 2+2?", "2+2", true},
    {"solve 12*4 and 3+3", "12*4", true},
    {"100/4", "100/4", true},
    {"10-7 please", "10-7", true},
    {"no math here", "", false},
    {"2 + 2", "", false},
  }
  for _, tc := range cases {
    got, ok := ExtractProblem(tc.message)
    if got != tc.want || ok != tc.ok {
      t.Errorf("ExtractProblem(%q) = (%q, %v), want (%q, %v)", tc.message, got, ok, tc.want, tc.ok)
    }
  }
}

func TestEvaluate(t *testing.T) {
  cases := []struct {
    problem  string
    want     float64
  }{
    {"2+2", 4},
    {"10-7", 3},
    {"12*4", 48},
    {"6/4", 1.5},
    {"3-5", -2},
  }
  for _, tc := range cases {
    got, err := Evaluate(tc.problem)
    if err != nil {
      t.Errorf("Evaluate(%q) returned error: %v", tc.problem, err)
      continue
    }
    if got != tc.want {
      t.Errorf("Evaluate(%q) = %v, want %v", tc.problem, got, tc.want)
    }
  }
}

func TestEvaluateDivisionByZero(t *testing.T) {
  _, err := Evaluate("5/0")
  if !errors.Is(err, ErrInvalidExpression) {
    t.Fatalf("expected ErrInvalidExpression, got %v", err)
  }
}

func TestFormatNumber(t *testing.T) {
  if got := FormatNumber(8); got != "8" {
    t.Errorf("FormatNumber(8) = %q, want \"8\"", got)
  }
  if got := FormatNumber(1.5); got != "1.5" {
    t.Errorf("FormatNumber(1.5) = %q, want \"1.5\"", got)
  }
  if got := FormatNumber(-2); got != "-2" {
    t.Errorf("FormatNumber(-2) = %q, want \"-2\"", got)
  }
}

func TestExplain(t *testing.T) {
  solution, explanation := Explain("2+2")
  if solution != "4" {
    t.Fatalf("solution = %q, want \"4\"", solution)
  }
  want := "Let's solve 2+2 step by step:\n\n1. Addition: 2 + 2 = 4\n\nFinal Answer: 4"
  if explanation != want {
    t.Fatalf("explanation = %q, want %q", explanation, want)
  }

  solution, explanation = Explain("12*4")
  if solution != "48" {
    t.Fatalf("solution = %q, want \"48\"", solution)
  }
  if !strings.Contains(explanation, "1. Multiplication: 12 × 4 = 48") {
    t.Fatalf("explanation missing multiplication step: %q", explanation)
  }

  _, explanation = Explain("6/4")
  if !strings.Contains(explanation, "1. Division: 6 ÷ 4 = 1.5") {
    t.Fatalf("explanation missing division step: %q", explanation)
  }
}

func TestExplainInvalid(t *testing.T) {
  solution, explanation := Explain("5/0")
  if solution != "Error: Invalid math expression" {
    t.Fatalf("solution = %q", solution)
  }
  if explanation != "I couldn't solve this math problem. Please make sure it's a valid expression." {
    t.Fatalf("explanation = %q", explanation)
  }
}

func TestSolutionResponse(t *testing.T) {
  got := SolutionResponse("the walkthrough")
  if !strings.HasPrefix(got, "[ChatGPT Solution]\n\n") {
    t.Fatalf("missing header: %q", got)
  }
  if !strings.Contains(got, "the walkthrough") {
    t.Fatalf("missing body: %q", got)
  }
  if !strings.HasSuffix(got, "Would you like me to explain any part of the solution in more detail?") {
    t.Fatalf("missing closing question: %q", got)
  }
}

func TestVerificationResponse(t *testing.T) {
  got := VerificationResponse("2+2", "4")
  if !strings.HasPrefix(got, "[Gemini Verification]\n\n") {
    t.Fatalf("missing header: %q", got)
  }
  if !strings.Contains(got, "The calculation is correct: 2+2 = 4") {
    t.Fatalf("missing verification line: %q", got)
  }
  if !strings.Contains(got, "order of operations (PEMDAS)") {
    t.Fatalf("missing tips section: %q", got)
  }
}
