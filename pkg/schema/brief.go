package schema

// CreatedKey is the derived timestamp key appended after the question fields
// in every rendered representation of a brief.
const CreatedKey = "created_utc"

// ProjectBrief returns the canonical alignment-checklist schema: the fixed,
// ordered question set collected before scoping any piece of work. The order
// is a compatibility contract for the rendered document.
func ProjectBrief() *Schema {
	return MustNew([]Field{
		{
			Name:     "service_name_version",
			Prompt:   "Service to set up (exact name + version):",
			Type:     FieldTypeText,
			Required: true,
		},
		{
			Name:     "environment_location",
			Prompt:   "Where is it being set up? (cloud/vm/bare metal + provider/region + OS/distro + version/arch):",
			Type:     FieldTypeText,
			Required: true,
		},
		{
			Name:     "programs_involved",
			Prompt:   "Programs/packages/daemons involved (exact versions if possible):",
			Type:     FieldTypeText,
			Required: true,
		},
		{
			Name:     "desired_outcome",
			Prompt:   "Desired outcome (business + technical, success criteria):",
			Type:     FieldTypeText,
			Required: true,
		},
		{
			Name:   "constraints",
			Prompt: "Constraints (e.g., offline repo only, FIPS, specific ports):",
			Type:   FieldTypeText,
		},
		{
			Name:    "timeline_urgency",
			Prompt:  "Urgency/timebox (e.g., 20 minutes, same-day, this week):",
			Type:    FieldTypeText,
			Default: "timebox: 20 minutes",
		},
		{
			Name:   "security_compliance",
			Prompt: "Security/compliance needs (e.g., CIS level, logging retention):",
			Type:   FieldTypeText,
		},
		{
			Name:   "change_control",
			Prompt: "Change ticket/approval id (if any):",
			Type:   FieldTypeText,
		},
		{
			Name:    "assumptions_allowed",
			Prompt:  "Assumptions allowed",
			Type:    FieldTypeChoice,
			Options: []string{"yes", "no"},
			Default: "no",
		},
		{
			Name:    "authoritative_source_preference",
			Prompt:  "Authoritative source preference",
			Type:    FieldTypeChoice,
			Options: []string{"upstream docs", "distro docs", "vendor docs"},
			Default: "vendor docs",
		},
		{
			Name:    "rollback_required",
			Prompt:  "Rollback required",
			Type:    FieldTypeChoice,
			Options: []string{"yes", "no"},
			Default: "yes",
		},
		{
			Name:    "statefulness",
			Prompt:  "Statefulness",
			Type:    FieldTypeChoice,
			Options: []string{"ephemeral", "persistent"},
			Default: "persistent",
		},
	})
}
