package dto

import (
	"elysian/internal/domains/audit/model"
	"elysian/shared"
	"elysian/shared/constant"
	"elysian/shared/timezone"
)

type AuditLogResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Action    string `json:"action"`
	TableName string `json:"table_name"`
	RecordID  string `json:"record_id,omitempty"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value,omitempty"`
	IPAddress string `json:"ip_address"`
	CreatedAt string `json:"created_at"`
}

func (r *AuditLogResponse) FromModel(mod model.AuditLog) {
	r.ID = mod.ID
	r.Action = mod.Action
	r.TableName = mod.TableName
	r.IPAddress = mod.IPAddress
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)

	if mod.UserID != nil {
		r.UserID = *mod.UserID
	}

	if mod.RecordID != nil {
		r.RecordID = *mod.RecordID
	}

	if mod.OldValue != nil {
		r.OldValue = *mod.OldValue
	}

	if mod.NewValue != nil {
		r.NewValue = *mod.NewValue
	}
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.AuditLogs[i].FromModel(mod)
	}
}
