// File: handlers/dates.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ginmongo/app"
	"ginmongo/dates"
	"ginmongo/utils"
)

type nowQuery struct {
	Weeks   int `form:"weeks"`
	Days    int `form:"days"`
	Hours   int `form:"hours"`
	Minutes int `form:"minutes"`
	Seconds int `form:"seconds"`
}

func (q nowQuery) offset() dates.Offset {
	return dates.Offset{
		Weeks:   q.Weeks,
		Days:    q.Days,
		Hours:   q.Hours,
		Minutes: q.Minutes,
		Seconds: q.Seconds,
	}
}

type valueQuery struct {
	Value string `form:"value" binding:"required"`
}

type weekdayQuery struct {
	Value string `form:"value" binding:"required,weekday"`
}

type daysSinceQuery struct {
	Timestamp string `form:"timestamp" binding:"required"`
}

type normalizeBatchRequest struct {
	Values []string `json:"values" binding:"required,min=1,dive,datetime_any"`
}

type weekdaysRequest struct {
	Days []dates.DayToken `json:"days" binding:"required,min=1"`
}

// WeekdaysResponse is the body of a successful weekdays lookup.
type WeekdaysResponse struct {
	Days          dates.DaySet `json:"days"`
	TodayExcluded bool         `json:"todayExcluded"`
}

// NowHandler returns the current instant, optionally shifted.
func NowHandler(r *app.Request) {
	var q nowQuery
	if err := r.ShouldBindQuery(&q); err != nil {
		utils.JSONError(r.Context, http.StatusBadRequest, "Invalid offset", err.Error())
		return
	}
	r.JSON(http.StatusOK, gin.H{"now": dates.NowAsString(r.App.Clock, q.offset())})
}

// NormalizeHandler renders a single date string in canonical form.
func NormalizeHandler(r *app.Request) {
	var q valueQuery
	if err := r.ShouldBindQuery(&q); err != nil {
		utils.JSONError(r.Context, http.StatusBadRequest, "Missing value", err.Error())
		return
	}
	normalized, err := dates.NormalizeString(q.Value)
	if err != nil {
		utils.DateError(r.Context, err)
		return
	}
	r.JSON(http.StatusOK, gin.H{"value": normalized})
}

// NormalizeBatchHandler renders every posted date string in canonical form.
func NormalizeBatchHandler(r *app.Request) {
	var req normalizeBatchRequest
	if err := r.ShouldBindJSON(&req); err != nil {
		utils.JSONError(r.Context, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	out := make([]string, 0, len(req.Values))
	for _, v := range req.Values {
		normalized, err := dates.NormalizeString(v)
		if err != nil {
			utils.DateError(r.Context, err)
			return
		}
		out = append(out, normalized)
	}
	r.Logger().Debug("normalized batch", zap.Int("count", len(out)))
	r.JSON(http.StatusOK, gin.H{"values": out})
}

// DaysSinceHandler counts whole days since the given timestamp.
func DaysSinceHandler(r *app.Request) {
	var q daysSinceQuery
	if err := r.ShouldBindQuery(&q); err != nil {
		utils.JSONError(r.Context, http.StatusBadRequest, "Missing timestamp", err.Error())
		return
	}
	days, err := dates.DaysSince(r.App.Clock, dates.FromText(q.Timestamp))
	if err != nil {
		utils.DateError(r.Context, err)
		return
	}
	r.JSON(http.StatusOK, gin.H{"days": days})
}

// WeekdayHandler resolves a single weekday token.
func WeekdayHandler(r *app.Request) {
	var q weekdayQuery
	if err := r.ShouldBindQuery(&q); err != nil {
		if failedTag(err, "weekday") {
			utils.DateError(r.Context, &dates.InvalidDayOfWeekError{Value: q.Value})
			return
		}
		utils.JSONError(r.Context, http.StatusBadRequest, "Missing value", err.Error())
		return
	}
	day, err := dates.ResolveDayOfWeek(dates.DayText(q.Value))
	if err != nil {
		utils.DateError(r.Context, err)
		return
	}
	r.JSON(http.StatusOK, gin.H{"day": day})
}

// WeekdaysHandler resolves a list of weekday tokens and reports whether today
// falls outside them.
func WeekdaysHandler(r *app.Request) {
	var req weekdaysRequest
	if err := r.ShouldBindJSON(&req); err != nil {
		utils.JSONError(r.Context, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	days, err := dates.ResolveDaysOfWeek(req.Days...)
	if err != nil {
		utils.DateError(r.Context, err)
		return
	}
	today := dates.Now(r.App.Clock, dates.Offset{}).Weekday()
	r.JSON(http.StatusOK, WeekdaysResponse{
		Days:          days,
		TodayExcluded: !days.ContainsWeekday(today),
	})
}

// failedTag reports whether err is a validation failure on the given tag.
func failedTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
