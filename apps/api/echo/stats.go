package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core/agenda"
)

// StatsResponse summarizes the collections for the dashboard landing page.
type (
	StatsResponse struct {
		Members       int            `json:"members"`
		MembersDivisi map[string]int `json:"membersDivisi"`
		Agenda        AgendaStats    `json:"agenda"`
		Photos        int            `json:"photos"`
		Videos        int            `json:"videos"`
		TotalViews    int            `json:"totalViews"`
		Outcomes      int            `json:"outcomes"`
		Courses       CourseStats    `json:"courses"`
		Documents     int            `json:"documents"`
		Achievements  int            `json:"achievements"`
	}

	AgendaStats struct {
		Total     int `json:"total"`
		Upcoming  int `json:"upcoming"`
		Completed int `json:"completed"`
	}

	CourseStats struct {
		Total        int `json:"total"`
		TotalOutcome int `json:"totalOutcome"`
		Selesai      int `json:"selesai"`
	}
)

type statsApi struct {
	deps ServerDeps
}

func registerStatsAPI(g *echo.Group, deps ServerDeps) {
	api := statsApi{deps: deps}
	g.GET("/stats", api.retrieve)
}

func (api *statsApi) retrieve(ctx echo.Context) error {
	var stats StatsResponse

	members, err := api.deps.MemberSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting members")
	}
	stats.Members = len(members)
	stats.MembersDivisi = make(map[string]int)
	for _, m := range members {
		stats.MembersDivisi[m.Divisi]++
	}

	items, err := api.deps.AgendaSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting agenda")
	}
	stats.Agenda.Total = len(items)
	for _, it := range items {
		switch it.Status {
		case agenda.StatusUpcoming:
			stats.Agenda.Upcoming++
		case agenda.StatusCompleted:
			stats.Agenda.Completed++
		}
	}

	photos, err := api.deps.GallerySvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting photos")
	}
	stats.Photos = len(photos)

	videos, err := api.deps.VideoSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting videos")
	}
	stats.Videos = len(videos)
	for _, v := range videos {
		stats.TotalViews += v.Views
	}

	outcomes, err := api.deps.OutcomeSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting outcomes")
	}
	stats.Outcomes = len(outcomes)

	courses, err := api.deps.OutcomeSvc.Courses()
	if err != nil {
		return errors.Wrap(err, "counting courses")
	}
	stats.Courses.Total = len(courses)
	for _, c := range courses {
		stats.Courses.TotalOutcome += c.TotalOutcome
		stats.Courses.Selesai += c.Selesai
	}

	docs, err := api.deps.DocumentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting documents")
	}
	stats.Documents = len(docs)

	achievements, err := api.deps.AchievementSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "counting achievements")
	}
	stats.Achievements = len(achievements)

	return ctx.JSON(http.StatusOK, stats)
}
