package models

// ListKind различает пользовательские списки студентов.
type ListKind string

const (
	ListKindFavorite ListKind = "favorite"
	ListKindCompare  ListKind = "compare"
)

var listKindHumanName = map[ListKind]string{
	ListKindFavorite: "избранное",
	ListKindCompare:  "сравнение",
}

func (k ListKind) ToHuman() string {
	if human, exist := listKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

// падежные формы для сообщений ответа
var listKindAccusative = map[ListKind]string{
	ListKindFavorite: "в избранное",
	ListKindCompare:  "в сравнение",
}

var listKindPrepositional = map[ListKind]string{
	ListKindFavorite: "в избранном",
	ListKindCompare:  "в сравнении",
}

func (k ListKind) ToAccusative() string {
	if human, exist := listKindAccusative[k]; exist {
		return human
	}
	return string(k)
}

func (k ListKind) ToPrepositional() string {
	if human, exist := listKindPrepositional[k]; exist {
		return human
	}
	return string(k)
}

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

var sexHumanName = map[Sex]string{
	SexMale:   "Мужчина",
	SexFemale: "Женщина",
}

func (s Sex) ToHuman() string {
	if human, exist := sexHumanName[s]; exist {
		return human
	}
	return string(s)
}
