package dto

import "time"

type CreateStaffRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	DepartmentID string `json:"departmentId,omitempty"`
	PositionID   string `json:"positionId,omitempty"`
}

type UpdateStaffRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID string `json:"departmentId,omitempty"`
	PositionID   string `json:"positionId,omitempty"`
}

type ResetStaffPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type StaffResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DepartmentID   string    `json:"departmentId,omitempty"`
	DepartmentName string    `json:"departmentName,omitempty"`
	PositionID     string    `json:"positionId,omitempty"`
	PositionName   string    `json:"positionName,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ListStaffResponse struct {
	Items    []StaffResponse `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePositionRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

type UpdatePositionRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	DepartmentID string `json:"departmentId" binding:"required"`
}

type PositionResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DepartmentID   string    `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
