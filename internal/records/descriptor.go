package records

import "github.com/aidanlsb/teachmate/internal/model"

// EditDescriptor is a sparse set of field overrides for one edit invocation.
// A nil slot leaves the field untouched. Simple fields replace wholesale;
// Grade and Attendance merge into the person's existing keyed collections.
//
// ModuleCodes, Tags and Consultations distinguish nil (untouched) from empty
// (clear the collection).
type EditDescriptor struct {
	Name          *model.Name
	Phone         *model.Phone
	Email         *model.Email
	Address       *model.Address
	StudentID     *model.StudentID
	ModuleCodes   []model.ModuleCode
	Tags          []model.Tag
	Consultations []model.Consultation
	Grade         *model.Grade
	Attendance    *model.Attendance
	Remark        *model.Remark
}

// IsAnyFieldEdited reports whether at least one slot is set.
func (d *EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil ||
		d.Phone != nil ||
		d.Email != nil ||
		d.Address != nil ||
		d.StudentID != nil ||
		d.ModuleCodes != nil ||
		d.Tags != nil ||
		d.Consultations != nil ||
		d.Grade != nil ||
		d.Attendance != nil ||
		d.Remark != nil
}
