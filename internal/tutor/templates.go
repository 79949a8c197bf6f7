package tutor

import (
  "fmt"
)

// CannedResponse is the pair of scripted replies returned when no live model
// backend is involved. Both sides of the pair are always populated.
type CannedResponse struct {
  ChatGPT  string
  Gemini   string
}

// Respond returns the canned pair for an intent. Unknown intents fall back to
// the general pair, which is the only one that quotes the student's message.
func Respond(message string, intent Intent) CannedResponse {
  if pair, ok := cannedResponses[intent]; ok {
    return pair
  }
  return CannedResponse{
    ChatGPT: fmt.Sprintf(generalChatGPT, message),
    Gemini:  fmt.Sprintf(generalGemini, message),
  }
}

const generalChatGPT = `[ChatGPT Analysis]

Let me help you with your question about "%s".

1. Understanding the Topic:
   - Key concepts and definitions
   - Important relationships and connections
   - Why this matters in your studies

2. Detailed Explanation:
   - Step-by-step breakdown
   - Examples and illustrations
   - Common applications

3. Learning Support:
   - Study tips and techniques
   - Practice exercises
   - Additional resources

Would you like me to focus on any specific aspect?`

const generalGemini = `[Gemini Insights]

Let me provide additional perspectives on "%s".

1. Alternative Approaches:
   - Different ways to understand the topic
   - Visual learning aids
   - Real-world connections

2. Critical Analysis:
   - Key points to remember
   - Common mistakes to avoid
   - How to verify your understanding

3. Practical Applications:
   - How to apply this knowledge
   - Study strategies
   - Exam preparation tips

Would you like to explore any of these aspects further?`

var cannedResponses = map[Intent]CannedResponse{
  IntentConcept: {
    ChatGPT: `[ChatGPT Explanation]

Let me help you understand this concept thoroughly.

1. Core Concept:
   - Definition and key principles
   - Why it's important
   - How it relates to your studies

2. Step-by-Step Breakdown:
   - First step: Detailed explanation
   - Second step: Examples and applications
   - Third step: Common challenges and solutions

3. Practical Applications:
   - Real-world examples
   - How to apply this knowledge
   - Tips for remembering and using this concept

Would you like me to focus on any specific aspect?`,
    Gemini: `[Gemini Additional Insights]

Let me provide some additional perspectives:

1. Alternative Approaches:
   - Different ways to understand the concept
   - Visual representations and analogies
   - Historical context and development

2. Critical Thinking:
   - Common misconceptions to avoid
   - How to verify your understanding
   - Questions to test your knowledge

3. Learning Strategies:
   - Best practices for mastering this topic
   - Study techniques and resources
   - How to apply this in exams

Would you like to explore any of these aspects further?`,
  },
  IntentDefinition: {
    ChatGPT: `[ChatGPT Definition]

Let me provide a comprehensive definition:

1. Basic Definition:
   - Clear explanation of the term
   - Key characteristics
   - Important distinctions

2. Detailed Explanation:
   - Components and elements
   - How it works
   - Why it matters

3. Context and Usage:
   - Where it's used
   - Related terms
   - Common applications

Would you like me to elaborate on any part?`,
    Gemini: `[Gemini Context]

Let me add some context to this definition:

1. Historical Background:
   - Origin and development
   - Key contributors
   - Evolution over time

2. Modern Understanding:
   - Current interpretations
   - Recent developments
   - Contemporary applications

3. Practical Implications:
   - How this affects your studies
   - Real-world relevance
   - Future developments

Would you like to know more about any of these aspects?`,
  },
  IntentProcedure: {
    ChatGPT: `[ChatGPT Step-by-Step Guide]

Let me walk you through this process:

1. Preparation:
   - What you need to know
   - Materials required
   - Prerequisites

2. Step-by-Step Instructions:
   - Step 1: Detailed explanation
   - Step 2: What to do
   - Step 3: How to verify

3. Tips and Best Practices:
   - Common mistakes to avoid
   - Pro tips
   - Troubleshooting guide

Would you like me to explain any step in more detail?`,
    Gemini: `[Gemini Alternative Methods]

Here are some additional approaches:

1. Alternative Methods:
   - Different ways to achieve the same result
   - When to use each method
   - Pros and cons

2. Advanced Techniques:
   - More efficient approaches
   - Expert tips
   - Time-saving strategies

3. Common Challenges:
   - What to watch out for
   - How to overcome obstacles
   - When to ask for help

Would you like to explore any of these alternatives?`,
  },
  IntentExplanation: {
    ChatGPT: `[ChatGPT Explanation]

Let me explain why this happens:

1. Root Causes:
   - Primary factors
   - Contributing elements
   - Underlying principles

2. Process and Mechanism:
   - How it works
   - Step-by-step breakdown
   - Key interactions

3. Implications and Effects:
   - Consequences
   - Real-world impact
   - Why it matters

Would you like me to elaborate on any aspect?`,
    Gemini: `[Gemini Additional Context]

Let me provide some additional context:

1. Historical Perspective:
   - How this developed
   - Key discoveries
   - Evolution over time

2. Current Understanding:
   - Modern interpretations
   - Recent research
   - Contemporary views

3. Future Implications:
   - Where this is heading
   - Potential developments
   - Areas for further study

Would you like to explore any of these aspects?`,
  },
  IntentComparison: {
    ChatGPT: `[ChatGPT Comparison]

Let me compare these concepts:

1. Similarities:
   - Common features
   - Shared characteristics
   - Overlapping aspects

2. Differences:
   - Key distinctions
   - Unique features
   - Contrasting elements

3. When to Use Each:
   - Best applications
   - Appropriate contexts
   - Practical considerations

Would you like me to focus on any specific aspect?`,
    Gemini: `[Gemini Analysis]

Let me provide additional insights:

1. Critical Evaluation:
   - Strengths and weaknesses
   - Pros and cons
   - Key considerations

2. Practical Applications:
   - Real-world examples
   - Use cases
   - Best practices

3. Decision Making:
   - How to choose
   - Factors to consider
   - Making the right choice

Would you like to explore any of these aspects?`,
  },
  IntentExample: {
    ChatGPT: `[ChatGPT Examples]

Let me provide some examples:

1. Basic Examples:
   - Simple cases
   - Clear illustrations
   - Easy to understand

2. Advanced Examples:
   - Complex scenarios
   - Real-world applications
   - Detailed analysis

3. Practice Problems:
   - Try it yourself
   - Step-by-step solutions
   - Common variations

Would you like more examples or a different type?`,
    Gemini: `[Gemini Additional Examples]

Here are some more examples:

1. Alternative Scenarios:
   - Different contexts
   - Various applications
   - Unique cases

2. Common Mistakes:
   - What to avoid
   - Typical errors
   - How to correct them

3. Advanced Applications:
   - Complex uses
   - Expert-level examples
   - Cutting-edge applications

Would you like to explore any of these further?`,
  },
  IntentStudy: {
    ChatGPT: `[ChatGPT Study Guide]

Let me help you with your studies:

1. Study Strategies:
   - Effective methods
   - Time management
   - Note-taking tips

2. Subject-Specific Tips:
   - Key concepts
   - Important formulas
   - Common questions

3. Exam Preparation:
   - Practice questions
   - Revision techniques
   - Test-taking strategies

Would you like me to focus on any specific area?`,
    Gemini: `[Gemini Learning Tips]

Here are some additional learning strategies:

1. Active Learning:
   - Engagement techniques
   - Practice methods
   - Application exercises

2. Memory Techniques:
   - Mnemonics
   - Visualization
   - Association methods

3. Long-term Retention:
   - Spaced repetition
   - Review strategies
   - Application practice

Would you like to explore any of these techniques?`,
  },
  IntentWriting: {
    ChatGPT: `[ChatGPT Writing Assistant]

Let me help you with your writing:

1. Structure and Organization:
   - Clear thesis statement
   - Logical flow of ideas
   - Strong supporting arguments

2. Content Development:
   - Evidence and examples
   - Analysis and interpretation
   - Critical thinking

3. Writing Style:
   - Grammar and mechanics
   - Word choice and vocabulary
   - Sentence structure

Would you like me to focus on any specific aspect?`,
    Gemini: `[Gemini Writing Tips]

Here are some additional writing strategies:

1. Revision Techniques:
   - Peer review guidelines
   - Self-editing checklist
   - Common mistakes to avoid

2. Research Skills:
   - Finding reliable sources
   - Proper citation methods
   - Integrating evidence

3. Writing Process:
   - Pre-writing strategies
   - Drafting techniques
   - Final editing tips

Would you like to explore any of these areas?`,
  },
  IntentLanguage: {
    ChatGPT: `[ChatGPT Language Learning]

Let me help you with language learning:

1. Speaking Practice:
   - Pronunciation tips
   - Conversation starters
   - Common phrases

2. Grammar and Vocabulary:
   - Key grammar rules
   - Essential vocabulary
   - Word usage examples

3. Cultural Context:
   - Cultural nuances
   - Social etiquette
   - Real-world applications

Would you like to focus on any specific area?`,
    Gemini: `[Gemini Language Tips]

Here are additional language learning strategies:

1. Immersion Techniques:
   - Listening exercises
   - Reading practice
   - Writing activities

2. Memory Techniques:
   - Mnemonics
   - Spaced repetition
   - Association methods

3. Practice Resources:
   - Recommended apps
   - Online resources
   - Practice exercises

Would you like to explore any of these?`,
  },
  IntentPlanning: {
    ChatGPT: `[ChatGPT Study Planner]

Let me help you plan your studies:

1. Time Management:
   - Study schedule creation
   - Priority setting
   - Break planning

2. Goal Setting:
   - Short-term objectives
   - Long-term goals
   - Progress tracking

3. Study Techniques:
   - Active learning methods
   - Review strategies
   - Test preparation

Would you like me to focus on any specific aspect?`,
    Gemini: `[Gemini Planning Tips]

Here are additional planning strategies:

1. Productivity Methods:
   - Pomodoro technique
   - Time blocking
   - Task batching

2. Organization Tools:
   - Digital planners
   - Study apps
   - Progress trackers

3. Motivation Strategies:
   - Goal visualization
   - Reward systems
   - Accountability methods

Would you like to explore any of these?`,
  },
  IntentSpecialEd: {
    ChatGPT: `[ChatGPT Special Education Support]

Let me help you with special education needs:

1. Learning Adaptations:
   - Content modifications
   - Alternative formats
   - Assistive technologies

2. Support Strategies:
   - Individualized approaches
   - Multi-sensory learning
   - Progress monitoring

3. Resource Recommendations:
   - Specialized tools
   - Support services
   - Community resources

Would you like me to focus on any specific area?`,
    Gemini: `[Gemini Additional Support]

Here are more support strategies:

1. Accessibility Tools:
   - Text-to-speech
   - Speech-to-text
   - Screen readers

2. Learning Techniques:
   - Visual aids
   - Hands-on activities
   - Interactive methods

3. Support Networks:
   - Professional services
   - Peer support
   - Family resources

Would you like to explore any of these?`,
  },
  IntentResources: {
    ChatGPT: `[ChatGPT Educational Resources]

Let me help you find learning resources:

1. Digital Resources:
   - Online textbooks
   - Educational videos
   - Interactive tools

2. Study Materials:
   - Practice exercises
   - Study guides
   - Reference materials

3. Learning Platforms:
   - Educational websites
   - Learning apps
   - Online courses

Would you like me to focus on any specific type of resource?`,
    Gemini: `[Gemini Resource Recommendations]

Here are additional resource suggestions:

1. Interactive Learning:
   - Virtual labs
   - Simulations
   - Educational games

2. Community Resources:
   - Study groups
   - Tutoring services
   - Learning communities

3. Advanced Tools:
   - Research databases
   - Academic journals
   - Professional networks

Would you like to explore any of these?`,
  },
  IntentTracking: {
    ChatGPT: `[ChatGPT Progress Tracking]

Let me help you track learning progress:

1. Performance Metrics:
   - Assessment tracking
   - Skill development
   - Goal achievement

2. Progress Analysis:
   - Strengths identification
   - Areas for improvement
   - Growth patterns

3. Reporting Tools:
   - Progress reports
   - Achievement tracking
   - Feedback systems

Would you like me to focus on any specific aspect?`,
    Gemini: `[Gemini Tracking Tips]

Here are additional tracking strategies:

1. Data Visualization:
   - Progress charts
   - Performance graphs
   - Trend analysis

2. Feedback Systems:
   - Regular check-ins
   - Progress reviews
   - Goal adjustments

3. Support Resources:
   - Tracking tools
   - Reporting systems
   - Communication platforms

Would you like to explore any of these?`,
  },
  IntentTeaching: {
    ChatGPT: `[ChatGPT Teaching Assistant]

Let me help you with teaching strategies:

1. Lesson Planning:
   - Curriculum design
   - Activity creation
   - Assessment development

2. Classroom Management:
   - Engagement techniques
   - Behavior strategies
   - Group dynamics

3. Teaching Methods:
   - Differentiated instruction
   - Active learning
   - Assessment techniques

Would you like me to focus on any specific area?`,
    Gemini: `[Gemini Teaching Tips]

Here are additional teaching strategies:

1. Professional Development:
   - Teaching resources
   - Training opportunities
   - Best practices

2. Student Support:
   - Individualized help
   - Group activities
   - Special needs support

3. Classroom Technology:
   - Digital tools
   - Interactive resources
   - Assessment platforms

Would you like to explore any of these?`,
  },
  IntentContent: {
    ChatGPT: `[ChatGPT Content Creation]

Let me help you create educational content:

1. Content Development:
   - Lesson planning
   - Activity design
   - Resource creation

2. Engagement Strategies:
   - Interactive elements
   - Multimedia integration
   - Assessment tools

3. Curriculum Alignment:
   - Standards matching
   - Learning objectives
   - Progress tracking

Would you like me to focus on any specific area?`,
    Gemini: `[Gemini Content Tips]

Here are additional content creation strategies:

1. Digital Tools:
   - Authoring platforms
   - Multimedia tools
   - Assessment systems

2. Content Types:
   - Interactive lessons
   - Practice exercises
   - Assessment materials

3. Distribution Methods:
   - Learning platforms
   - Content sharing
   - Student access

Would you like to explore any of these?`,
  },
}
