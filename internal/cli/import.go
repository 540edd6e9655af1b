package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/teachmate/internal/model"
	"github.com/aidanlsb/teachmate/internal/ui"
)

// importRecord is the YAML shape of one imported record.
type importRecord struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Phone       string   `yaml:"phone"`
	Address     string   `yaml:"address"`
	StudentID   string   `yaml:"student_id"`
	ModuleCodes []string `yaml:"module_codes"`
	Tags        []string `yaml:"tags"`
	Grades      []struct {
		Assignment string  `yaml:"assignment"`
		Score      float64 `yaml:"score"`
	} `yaml:"grades"`
	Attendance    map[string]string `yaml:"attendance"`
	Consultations []string          `yaml:"consultations"`
	Remark        string            `yaml:"remark"`
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import records from a YAML file or stdin",
	Long: `Import records from a YAML document: a list of records with the same
field names the JSON export uses. Records are validated and added one by
one; the import stops at the first invalid or duplicate record, leaving
the roster unchanged.

Examples:
  tm import students.yaml
  cat students.yaml | tm import`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return handleErrorMsg(codeInvalidInput, fmt.Sprintf("failed to read %s: %v", args[0], err), "")
			}
		} else {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				return handleErrorMsg(codeInvalidInput, "no input file given and stdin is a terminal", "Pass a file path or pipe YAML to stdin")
			}
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return handleErrorMsg(codeInvalidInput, fmt.Sprintf("failed to read stdin: %v", err), "")
			}
		}

		var raw []importRecord
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return handleErrorMsg(codeInvalidInput, fmt.Sprintf("failed to parse YAML: %v", err), "Expected a list of records")
		}

		people := make([]model.Person, 0, len(raw))
		for i, rec := range raw {
			p, err := rec.toPerson()
			if err != nil {
				return handleErrorMsg(codeInvalidInput, fmt.Sprintf("record %d: %v", i+1, err), "")
			}
			people = append(people, p)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		for _, p := range people {
			if err := sess.roster.Add(p); err != nil {
				return commandError(err)
			}
		}
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		if jsonOutput {
			outputSuccess(nil, &Meta{Count: len(people)})
			return nil
		}

		fmt.Println(ui.Successf("Imported %d records", len(people)))
		return nil
	},
}

// toPerson validates one imported record and builds the right variant.
func (rec importRecord) toPerson() (model.Person, error) {
	name, err := model.ParseName(rec.Name)
	if err != nil {
		return model.Person{}, err
	}
	email, err := model.ParseEmail(rec.Email)
	if err != nil {
		return model.Person{}, err
	}
	remark, err := model.ParseRemark(rec.Remark)
	if err != nil {
		return model.Person{}, err
	}

	core := model.Core{Name: name, Email: email, Remark: remark}

	for _, m := range rec.ModuleCodes {
		mod, err := model.ParseModuleCode(m)
		if err != nil {
			return model.Person{}, err
		}
		core.ModuleCodes = append(core.ModuleCodes, mod)
	}
	for _, t := range rec.Tags {
		tag, err := model.ParseTag(t)
		if err != nil {
			return model.Person{}, err
		}
		core.Tags = append(core.Tags, tag)
	}
	if len(rec.Grades) > 0 {
		core.Grades = make(map[string]model.Grade, len(rec.Grades))
		for _, g := range rec.Grades {
			grade, err := model.ParseGrade(fmt.Sprintf("%s:%v", g.Assignment, g.Score))
			if err != nil {
				return model.Person{}, err
			}
			core.Grades[grade.Assignment] = grade
		}
	}
	if len(rec.Attendance) > 0 {
		weeks := make(map[model.Week]model.AttendanceStatus, len(rec.Attendance))
		for rawWeek, rawStatus := range rec.Attendance {
			week, err := model.ParseWeek(rawWeek)
			if err != nil {
				return model.Person{}, err
			}
			status, err := model.ParseAttendanceStatus(rawStatus)
			if err != nil {
				return model.Person{}, err
			}
			if status == model.StatusUnmark {
				return model.Person{}, fmt.Errorf("attendance status 'unmark' is not storable")
			}
			weeks[week] = status
		}
		core.Attendance = model.NewAttendanceRecord(weeks)
	}
	for _, c := range rec.Consultations {
		consult, err := model.ParseConsultation(c)
		if err != nil {
			return model.Person{}, err
		}
		core.Consultations = append(core.Consultations, consult)
	}

	if rec.StudentID != "" {
		if rec.Phone != "" || rec.Address != "" {
			return model.Person{}, fmt.Errorf("a student record cannot hold phone or address fields")
		}
		id, err := model.ParseStudentID(rec.StudentID)
		if err != nil {
			return model.Person{}, err
		}
		return model.NewStudent(id, core), nil
	}

	phone, err := model.ParsePhone(rec.Phone)
	if err != nil {
		return model.Person{}, err
	}
	addr, err := model.ParseAddress(rec.Address)
	if err != nil {
		return model.Person{}, err
	}
	return model.NewContactPerson(phone, addr, core), nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
