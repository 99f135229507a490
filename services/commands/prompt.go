package commands

import (
	"fmt"

	"specsbot/models"
)

// specPromptTemplate is the fixed frame for specification generation. The
// user instruction is concatenated in as-is, opaque text.
const specPromptTemplate = `Generate detailed specifications for a Jira ticket with the following details:

Ticket Summary: %s
Ticket Description: %s

User Prompt: %s

Please provide a comprehensive and structured specification document that includes:
1. Overview
2. Requirements
3. Technical Details
4. Acceptance Criteria
5. Dependencies`

func buildSpecPrompt(issue *models.IssueFields, instruction string) string {
	return fmt.Sprintf(specPromptTemplate, issue.Summary, issue.Description, instruction)
}
