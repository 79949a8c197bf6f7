package tutor

import (
  "strings"
  "testing"
)

func TestRespondHeaders(t *testing.T) {
  headers := map[Intent][2]string{
    IntentConcept:      {"[ChatGPT Explanation]", "[Gemini Additional Insights]"},
    IntentDefinition:   {"[ChatGPT Definition]", "[Gemini Context]"},
    IntentProcedure:    {"[ChatGPT Step-by-Step Guide]", "[Gemini Alternative Methods]"},
    IntentExplanation:  {"[ChatGPT Explanation]", "[Gemini Additional Context]"},
    IntentComparison:   {"[ChatGPT Comparison]", "[Gemini Analysis]"},
    IntentExample:      {"[ChatGPT Examples]", "[Gemini Additional Examples]"},
    IntentStudy:        {"[ChatGPT Study Guide]", "[Gemini Learning Tips]"},
    IntentWriting:      {"[ChatGPT Writing Assistant]", "[Gemini Writing Tips]"},
    IntentLanguage:     {"[ChatGPT Language Learning]", "[Gemini Language Tips]"},
    IntentPlanning:     {"[ChatGPT Study Planner]", "[Gemini Planning Tips]"},
    IntentSpecialEd:    {"[ChatGPT Special Education Support]", "[Gemini Additional Support]"},
    IntentResources:    {"[ChatGPT Educational Resources]", "[Gemini Resource Recommendations]"},
    IntentTracking:     {"[ChatGPT Progress Tracking]", "[Gemini Tracking Tips]"},
    IntentTeaching:     {"[ChatGPT Teaching Assistant]", "[Gemini Teaching Tips]"},
    IntentContent:      {"[ChatGPT Content Creation]", "[Gemini Content Tips]"},
  }
  for intent, want := range headers {
    pair := Respond("anything", intent)
    if !strings.HasPrefix(pair.ChatGPT, want[0]) {
      t.Errorf("%s: ChatGPT response starts with %q, want %q", intent, firstLine(pair.ChatGPT), want[0])
    }
    if !strings.HasPrefix(pair.Gemini, want[1]) {
      t.Errorf("%s: Gemini response starts with %q, want %q", intent, firstLine(pair.Gemini), want[1])
    }
  }
}

func TestRespondGeneralQuotesMessage(t *testing.T) {
  pair := Respond("quantum entanglement", IntentGeneral)
  if !strings.HasPrefix(pair.ChatGPT, "[ChatGPT Analysis]") {
    t.Fatalf("unexpected ChatGPT header: %q", firstLine(pair.ChatGPT))
  }
  if !strings.Contains(pair.ChatGPT, `your question about "quantum entanglement"`) {
    t.Fatalf("ChatGPT response does not quote the message: %q", pair.ChatGPT)
  }
  if !strings.Contains(pair.Gemini, `additional perspectives on "quantum entanglement"`) {
    t.Fatalf("Gemini response does not quote the message: %q", pair.Gemini)
  }
}

func TestRespondCannedPairsDoNotQuoteMessage(t *testing.T) {
  pair := Respond("help me understand this", IntentConcept)
  if strings.Contains(pair.ChatGPT, "help me understand this") {
    t.Fatalf("canned response should not echo the message: %q", pair.ChatGPT)
  }
}

func TestRespondUnknownIntentFallsBack(t *testing.T) {
  pair := Respond("mystery", Intent("unmapped"))
  if !strings.HasPrefix(pair.ChatGPT, "[ChatGPT Analysis]") {
    t.Fatalf("expected general fallback, got %q", firstLine(pair.ChatGPT))
  }
}

func firstLine(s string) string {
  if i := strings.IndexByte(s, '\n'); i >= 0 {
    return s[:i]
  }
  return s
}
