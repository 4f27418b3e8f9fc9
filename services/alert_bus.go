package services

import (
	"fmt"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists a threshold alert and fans it out to open websocket
// sessions and registered devices. Safe to call anywhere; a no-op until
// InitAlertDeps has run.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Habit Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}
