package handler

import (
	"net/http"
	"time"
)

type HealthcheckResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
	Uptime string    `json:"uptime"`
}

func HealthcheckHandler(startedAt time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status: "ok",
			Time:   now,
			Uptime: now.Sub(startedAt).Truncate(time.Second).String(),
		})
	})
}
