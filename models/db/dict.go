package dbmodels

// Справочники. Заполняются администратором, на них ссылаются студенты и вакансии.

type Skill struct {
	BaseModel
	Name string `gorm:"index;type:varchar(100)"`
}

type EducationLevel struct {
	BaseModel
	Name string `gorm:"index;type:varchar(100)"`
}

type Schedule struct {
	BaseModel
	Name string `gorm:"index;type:varchar(100)"`
}

type Specialization struct {
	BaseModel
	Name string `gorm:"index;type:varchar(100)"`
}

type Location struct {
	BaseModel
	Name string `gorm:"index;type:varchar(255)"`
}

type Course struct {
	BaseModel
	Name string `gorm:"index;type:varchar(255)"`
}
