package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/records"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view <index> | view id/<student_id>",
	Short: "Show the full record at a position or by student ID",
	Long: `Show a single record in full: contact details, modules, tags, grades,
attendance and consultation slots.

The record is addressed either by its position in the currently displayed
list, or directly by student ID with the id/ marker. When both are given,
the student ID wins.

Examples:
  tm view 1
  tm view id/A1234567X`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lookup, err := parser.ParseViewArgs(strings.Join(args, " "))
		if err != nil {
			return commandError(err)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		var person model.Person
		if lookup.ByID() {
			found, ok := sess.roster.FindByStudentID(lookup.StudentID)
			if !ok {
				return commandError(records.ErrPersonNotFound)
			}
			person = found
		} else {
			person, err = sess.roster.At(lookup.Index)
			if err != nil {
				return commandError(err)
			}
		}

		if jsonOutput {
			outputSuccess(personView(person), nil)
			return nil
		}

		fmt.Print(ui.Card(person))
		return nil
	},
}

// personView is the JSON shape of a full record.
func personView(p model.Person) map[string]interface{} {
	view := map[string]interface{}{
		"name":  p.Name().String(),
		"email": p.Email().String(),
	}
	if id, ok := p.StudentID(); ok {
		view["student_id"] = id.String()
	}
	if c, ok := p.Contact(); ok {
		view["phone"] = c.Phone.String()
		view["address"] = c.Address.String()
	}

	mods := make([]string, 0)
	for _, m := range p.ModuleCodes() {
		mods = append(mods, m.String())
	}
	view["module_codes"] = mods

	tags := make([]string, 0)
	for _, t := range p.Tags() {
		tags = append(tags, t.String())
	}
	view["tags"] = tags

	grades := make([]map[string]interface{}, 0)
	for _, g := range p.GradeList() {
		grades = append(grades, map[string]interface{}{
			"assignment": g.Assignment,
			"score":      g.Score,
		})
	}
	view["grades"] = grades

	attendance := make(map[string]string)
	for w, status := range p.Attendance().Entries() {
		attendance[fmt.Sprintf("%d", w)] = status.String()
	}
	view["attendance"] = attendance

	consultations := make([]string, 0)
	for _, c := range p.Consultations() {
		consultations = append(consultations, c.String())
	}
	view["consultations"] = consultations

	if r := p.Remark(); r != "" {
		view["remark"] = r.String()
	}
	return view
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
