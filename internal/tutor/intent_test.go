package tutor

import (
  "testing"
)

func TestClassify(t *testing.T) {
  cases := []struct {
    message  string
    want     Intent
  }{
    {"2+2", IntentMath},
    {"What is 12*4?", IntentMath},
    {"can you help me with photosynthesis", IntentConcept},
    {"Explain gravity", IntentConcept},
    {"what is a noun", IntentDefinition},
    {"define osmosis", IntentDefinition},
    {"how to balance an equation", IntentProcedure},
    {"what are the steps", IntentProcedure},
    {"why does ice float", IntentExplanation},
    {"the reason for seasons", IntentExplanation},
    {"compare mitosis and meiosis", IntentComparison},
    {"difference between speed and velocity", IntentComparison},
    {"give me an example", IntentExample},
    {"show an instance of this", IntentExample},
    {"I need to study for finals", IntentStudy},
    {"best way to learn fractions", IntentStudy},
    {"review my essay", IntentWriting},
    {"improve my writing", IntentWriting},
    {"practice a new language", IntentLanguage},
    {"I want to speak French", IntentLanguage},
    {"make me a schedule", IntentPlanning},
    {"plan my week", IntentPlanning},
    {"special education options", IntentSpecialEd},
    {"support for a disability", IntentSpecialEd},
    {"recommend a textbook", IntentResources},
    {"find me a resource", IntentResources},
    {"my parent wants updates", IntentTracking},
    {"track my progress", IntentTracking},
    {"my teacher assigned this", IntentTeaching},
    {"classroom activities", IntentTeaching},
    {"create lesson content", IntentContent},
    {"build a lesson", IntentContent},
    {"hello there", IntentGeneral},
    {"", IntentGeneral},
  }
  for _, tc := range cases {
    if got := Classify(tc.message); got != tc.want {
      t.Errorf("Classify(%q) = %q, want %q", tc.message, got, tc.want)
    }
  }
}

func TestClassifyOrder(t *testing.T) {
  // Arithmetic wins over keyword matches even when the message also
  // contains a definition cue.
  if got := Classify("what is 2+2"); got != IntentMath {
    t.Fatalf("expected math, got %q", got)
  }
  // Earlier rules shadow later ones: "help" beats "essay".
  if got := Classify("help with my essay"); got != IntentConcept {
    t.Fatalf("expected concept, got %q", got)
  }
  // Keyword matching is case-insensitive.
  if got := Classify("DEFINE velocity"); got != IntentDefinition {
    t.Fatalf("expected definition, got %q", got)
  }
}
