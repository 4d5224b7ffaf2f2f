package matchinghandler

import (
	"bytes"
	"sort"

	"careerhub-backend/db"
	xlsexport "careerhub-backend/lib/export/xls"
	studentstore "careerhub-backend/lib/student/store"
	initchecker "careerhub-backend/lib/utils/init-checker"
	vacancystore "careerhub-backend/lib/vacancy/store"
	matchingapimodels "careerhub-backend/models/api/matching"
	studentapimodels "careerhub-backend/models/api/student"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrVacancyNotFound = errors.New("Вакансия не найдена")

type Provider interface {
	List(vacancyID string, filter matchingapimodels.MatchingFilter) (list []matchingapimodels.StudentMatchView, err error)
	Export(vacancyID string, filter matchingapimodels.MatchingFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		vacancyStore: vacancystore.NewInstance(db.DB),
		studentStore: studentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"vacancyStore", instance.vacancyStore,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	vacancyStore vacancystore.Provider
	studentStore studentstore.Provider
}

func (i impl) List(vacancyID string, filter matchingapimodels.MatchingFilter) (list []matchingapimodels.StudentMatchView, err error) {
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("ошибка поиска вакансии для подбора")
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound
	}
	requiredSkillIDs := make([]string, 0, len(vacancy.RequiredSkills))
	for _, skill := range vacancy.RequiredSkills {
		requiredSkillIDs = append(requiredSkillIDs, skill.ID)
	}
	candidates, err := i.studentStore.ListWithAnySkill(requiredSkillIDs, filter)
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("ошибка получения кандидатов для подбора")
		return nil, err
	}
	return rankStudents(requiredSkillIDs, candidates), nil
}

func (i impl) Export(vacancyID string, filter matchingapimodels.MatchingFilter) (*bytes.Buffer, error) {
	list, err := i.List(vacancyID, filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportMatchingList(list)
}

// rankStudents считает число совпавших скиллов. Кандидаты без единого
// совпадения отбрасываются, сортировка по убыванию счета устойчивая,
// порядок кандидатов с равным счетом сохраняется.
func rankStudents(requiredSkillIDs []string, candidates []dbmodels.Student) []matchingapimodels.StudentMatchView {
	required := make(map[string]struct{}, len(requiredSkillIDs))
	for _, id := range requiredSkillIDs {
		required[id] = struct{}{}
	}
	result := make([]matchingapimodels.StudentMatchView, 0, len(candidates))
	for _, student := range candidates {
		score := 0
		for _, skill := range student.Skills {
			if _, ok := required[skill.ID]; ok {
				score++
			}
		}
		if score == 0 {
			continue
		}
		percentage := 0
		if len(required) != 0 {
			percentage = 100 * score / len(required)
		}
		result = append(result, matchingapimodels.StudentMatchView{
			StudentView:        studentapimodels.StudentConvert(student),
			Score:              score,
			MatchingPercentage: percentage,
		})
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Score > result[b].Score
	})
	return result
}
