package tutor

import (
  "strings"
)

type Intent string

const (
  IntentMath          Intent = "math"
  IntentConcept       Intent = "concept"
  IntentDefinition    Intent = "definition"
  IntentProcedure     Intent = "procedure"
  IntentExplanation   Intent = "explanation"
  IntentComparison    Intent = "comparison"
  IntentExample       Intent = "example"
  IntentStudy         Intent = "study"
  IntentWriting       Intent = "writing"
  IntentLanguage      Intent = "language"
  IntentPlanning      Intent = "planning"
  IntentSpecialEd     Intent = "special_ed"
  IntentResources     Intent = "resources"
  IntentTracking      Intent = "tracking"
  IntentTeaching      Intent = "teaching"
  IntentContent       Intent = "content"
  IntentGeneral       Intent = "general"
)

// intentRules are checked in order; the first pair with a matching keyword
// wins, so earlier intents shadow later ones.
var intentRules = []struct {
  intent    Intent
  keywords  [2]string
}{
  {IntentConcept, [2]string{"help", "explain"}},
  {IntentDefinition, [2]string{"what is", "define"}},
  {IntentProcedure, [2]string{"how to", "steps"}},
  {IntentExplanation, [2]string{"why", "reason"}},
  {IntentComparison, [2]string{"compare", "difference"}},
  {IntentExample, [2]string{"example", "instance"}},
  {IntentStudy, [2]string{"study", "learn"}},
  {IntentWriting, [2]string{"essay", "writing"}},
  {IntentLanguage, [2]string{"language", "speak"}},
  {IntentPlanning, [2]string{"schedule", "plan"}},
  {IntentSpecialEd, [2]string{"special", "disability"}},
  {IntentResources, [2]string{"textbook", "resource"}},
  {IntentTracking, [2]string{"parent", "track"}},
  {IntentTeaching, [2]string{"teacher", "classroom"}},
  {IntentContent, [2]string{"content", "lesson"}},
}

// Classify maps a raw student message to an intent. Arithmetic detection runs
// against the raw text before any lowercasing, so "What is 2+2" is math, not
// a definition question.
func Classify(message string) Intent {
  if problemPattern.MatchString(message) {
    return IntentMath
  }
  lower := strings.ToLower(message)
  for _, rule := range intentRules {
    if strings.Contains(lower, rule.keywords[0]) || strings.Contains(lower, rule.keywords[1]) {
      return rule.intent
    }
  }
  return IntentGeneral
}
