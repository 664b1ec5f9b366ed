package models

// Student represents a roster entry in the bundled Student table
type Student struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Firstname string `gorm:"column:firstname" json:"firstname" validate:"required,notblank,max=100"`
	Lastname  string `gorm:"column:lastname" json:"lastname" validate:"required,notblank,max=100"`
	Matnumber string `gorm:"column:matrikelnummer" json:"matnumber" validate:"required,notblank,max=20"`
	Email     string `gorm:"column:email" json:"email" validate:"required,email"`
}

// TableName pins the table name used by the bundled database
func (Student) TableName() string {
	return "Student"
}

// FullName joins first and last name
func (s Student) FullName() string {
	switch {
	case s.Firstname == "":
		return s.Lastname
	case s.Lastname == "":
		return s.Firstname
	}
	return s.Firstname + " " + s.Lastname
}
