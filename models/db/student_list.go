package dbmodels

// Избранные студенты пользователя. Пара (user, student) уникальна,
// повторное добавление упирается в индекс.
type FavoriteStudent struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);uniqueIndex:idx_favorite_user_student"`
	StudentID string `gorm:"type:varchar(36);uniqueIndex:idx_favorite_user_student"`
	User      *User
	Student   *Student
}

// Студенты в списке сравнения пользователя, независим от избранного.
type CompareStudent struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);uniqueIndex:idx_compare_user_student"`
	StudentID string `gorm:"type:varchar(36);uniqueIndex:idx_compare_user_student"`
	User      *User
	Student   *Student
}
