package triage

import (
	"strconv"
	"strings"

	"hospital-triage/pkg"
)

// maxPromptChars caps the classification input; everything past it is cut.
const maxPromptChars = 4000

// BuildPrompt renders a patient profile as a single classification input.
// Fields appear in a fixed order under two section headers and absent or
// empty fields are skipped entirely.  The result never exceeds
// maxPromptChars characters and is identical for identical input.
func BuildPrompt(personal pkg.PersonalInfo, medical pkg.MedicalInfo) string {
	parts := []string{"PERSONAL INFO:"}

	add := func(label string, v *string) {
		if v != nil && *v != "" {
			parts = append(parts, label+": "+*v)
		}
	}

	add("Name", personal.FullName)
	add("DOB", personal.DateOfBirth)
	add("Address", personal.Address)
	add("Contact", personal.ContactNumber)
	add("Emergency Contact", personal.EmergencyContact)

	parts = append(parts, "\nMEDICAL INFO:")
	add("Gender", medical.Gender)
	if medical.Age != nil {
		parts = append(parts, "Age: "+strconv.Itoa(*medical.Age))
	}
	add("Blood group", medical.BloodGroup)
	add("Past illnesses", medical.PastIllnesses)
	add("Current conditions", medical.CurrentConditions)
	add("Allergies", medical.Allergies)
	add("Medications", medical.Medications)
	add("Past surgeries / injuries", medical.PastSurgeries)
	add("Family history", medical.FamilyHistory)
	add("Lifestyle", medical.Lifestyle)

	prompt := strings.Join(parts, " | ")
	if runes := []rune(prompt); len(runes) > maxPromptChars {
		prompt = string(runes[:maxPromptChars])
	}
	return prompt
}
