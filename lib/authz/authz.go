package authz

// Actor описывает субъекта запроса. Пустой ID означает анонимный запрос.
type Actor struct {
	ID      string
	IsAdmin bool
}

func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

// OwnerOrAdmin разрешает доступ автору объекта и администратору.
func OwnerOrAdmin(actor Actor, authorID string) bool {
	if actor.IsAnonymous() {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	return actor.ID == authorID
}

func AdminOnly(actor Actor) bool {
	if actor.IsAnonymous() {
		return false
	}
	return actor.IsAdmin
}

// VacancyAuthorForMatching проверяет право просматривать подбор по вакансии.
// Авторство проверяется до существования вакансии, поэтому при отсутствующей
// вакансии не администратор получает отказ, а не "не найдено".
func VacancyAuthorForMatching(actor Actor, authorID string) bool {
	if actor.IsAnonymous() {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	return actor.ID == authorID
}
