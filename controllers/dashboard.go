// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	CarsInStock       int64            `json:"carsInStock"`
	CarsSold          int64            `json:"carsSold"`
	OpenLeads         int64            `json:"openLeads"`
	StaleLeads        int64            `json:"staleLeads"`
	PendingServices   int64            `json:"pendingServices"`
	CompletedServices int64            `json:"completedServices"`
	RecentServices    []RecentService  `json:"recentServices"`
	AbsencesToday     int64            `json:"absencesToday"`
}

type RecentService struct {
	CustomerName string `json:"customerName"`
	CarName      string `json:"carName"`
	FinalStatus  bool   `json:"finalStatus"`
}

func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Car{}).Where("sold = ?", false).Count(&overview.CarsInStock)
	config.DB.Model(&models.Car{}).Where("sold = ?", true).Count(&overview.CarsSold)

	config.DB.Model(&models.Lead{}).Where("final_stamp = ''").Count(&overview.OpenLeads)
	weekAgo := time.Now().AddDate(0, 0, -7)
	config.DB.Model(&models.Lead{}).
		Where("final_stamp = '' AND created_at < ?", weekAgo).
		Count(&overview.StaleLeads)

	config.DB.Model(&models.Service{}).Where("final_status = ?", false).Count(&overview.PendingServices)
	config.DB.Model(&models.Service{}).Where("final_status = ?", true).Count(&overview.CompletedServices)

	today := utils.BeginningOfDay(time.Now())
	config.DB.Model(&models.AttendanceRecord{}).
		Where("date >= ? AND date < ?", today, today.AddDate(0, 0, 1)).
		Count(&overview.AbsencesToday)

	var recent []models.Service
	if err := config.DB.Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	for _, s := range recent {
		overview.RecentServices = append(overview.RecentServices, RecentService{
			CustomerName: s.CustomerName,
			CarName:      s.CarName,
			FinalStatus:  s.FinalStatus,
		})
	}

	c.JSON(http.StatusOK, overview)
}
