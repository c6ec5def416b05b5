package hr

import "context"

type StaffRepository interface {
	Create(ctx context.Context, staff *Staff) error
	Update(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	GetBySID(ctx context.Context, sid string) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*Staff, int64, error)
	CountByDepartmentID(ctx context.Context, departmentID uint) (int64, error)
	CountByPositionID(ctx context.Context, positionID uint) (int64, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *Department) error
	Update(ctx context.Context, department *Department) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetBySID(ctx context.Context, sid string) (*Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Department, error)
}

type PositionRepository interface {
	Create(ctx context.Context, position *Position) error
	Update(ctx context.Context, position *Position) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Position, error)
	GetBySID(ctx context.Context, sid string) (*Position, error)
	List(ctx context.Context) ([]*Position, error)
	ListByDepartmentID(ctx context.Context, departmentID uint) ([]*Position, error)
	CountByDepartmentID(ctx context.Context, departmentID uint) (int64, error)
}
