package ui

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/teachmate/internal/model"
)

// Card renders a full record card for a single person, used by `tm view`.
func Card(p model.Person) string {
	var sb strings.Builder

	sb.WriteString(AccentBold.Render(p.Name().String()))
	if id, ok := p.StudentID(); ok {
		sb.WriteString(" ")
		sb.WriteString(Muted.Render("("+id.String()+")"))
	}
	sb.WriteString("\n")

	t := NewTable(2)
	t.AddRow("Email:", p.Email().String())
	if c, ok := p.Contact(); ok {
		t.AddRow("Phone:", c.Phone.String())
		t.AddRow("Address:", c.Address.String())
	}
	t.AddRow("Modules:", joinOrNone(moduleStrings(p.ModuleCodes())))
	t.AddRow("Tags:", joinOrNone(tagStrings(p.Tags())))
	if r := p.Remark(); r != "" {
		t.AddRow("Remark:", r.String())
	}
	sb.WriteString(indentLines(t.String(), "  "))

	if p.IsStudent() {
		sb.WriteString(gradeSection(p))
		sb.WriteString(attendanceSection(p))
	}
	sb.WriteString(consultationSection(p))

	return sb.String()
}

// Summary renders a one-line summary for a person, used by `tm list`.
func Summary(index int, p model.Person) string {
	label := Accent.Render(p.Name().String())
	if id, ok := p.StudentID(); ok {
		label += " " + Muted.Render("("+id.String()+")")
	}
	extras := joinOrNone(moduleStrings(p.ModuleCodes()))
	return fmt.Sprintf("%d. %s  %s", index, label, Muted.Render(extras))
}

func gradeSection(p model.Person) string {
	grades := p.GradeList()
	if len(grades) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Header("Grades"))
	sb.WriteString("\n")
	t := NewTable(2)
	for _, g := range grades {
		t.AddRow(g.Assignment, g.FormatScore())
	}
	sb.WriteString(indentLines(t.String(), "  "))
	return sb.String()
}

func attendanceSection(p model.Person) string {
	record := p.Attendance()
	if record.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Header("Attendance"))
	sb.WriteString("\n")
	t := NewTable(2)
	for _, w := range record.Weeks() {
		status, _ := record.Status(w)
		t.AddRow(fmt.Sprintf("Week %d", w), string(status))
	}
	sb.WriteString(indentLines(t.String(), "  "))
	return sb.String()
}

func consultationSection(p model.Person) string {
	consults := p.Consultations()
	if len(consults) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Header("Consultations"))
	sb.WriteString("\n")
	l := NewList()
	for _, c := range consults {
		l.Add(c.String())
	}
	sb.WriteString(l.String())
	return sb.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func moduleStrings(codes []model.ModuleCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}

func tagStrings(tags []model.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

func indentLines(s, indent string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
