package matchingapimodels

import (
	studentapimodels "careerhub-backend/models/api/student"
)

// Фильтры подбора: закрытый набор, неизвестные параметры запроса
// просто не привязываются.
type MatchingFilter struct {
	LocationID       string `json:"location" query:"location"`
	EducationLevelID string `json:"education_level" query:"education_level"`
	ScheduleID       string `json:"schedule" query:"schedule"`
}

type StudentMatchView struct {
	studentapimodels.StudentView
	Score              int `json:"score"`               // кол-во совпавших скиллов
	MatchingPercentage int `json:"matching_percentage"` // доля совпавших скиллов от требуемых, в процентах
}
