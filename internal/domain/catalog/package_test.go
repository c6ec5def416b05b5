package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vendra-inc/vendra/internal/domain/catalog/valueobjects"
)

func monthlyPrice(t *testing.T) (vo.Duration, vo.Money) {
	t.Helper()
	d, err := vo.NewDuration(1, vo.UnitMonths)
	require.NoError(t, err)
	return d, vo.NewMoneyFromRupees(999, "INR")
}

func TestNewSoftwarePackage(t *testing.T) {
	duration, price := monthlyPrice(t)

	pkg, err := NewSoftwarePackage("Pro Monthly", 7, duration, price, "full access")
	require.NoError(t, err)

	assert.True(t, pkg.Type().IsSoftware())
	require.NotNil(t, pkg.SoftwareID())
	assert.Equal(t, uint(7), *pkg.SoftwareID())
	assert.Empty(t, pkg.ServiceIDs())
	assert.True(t, pkg.IsActive())
	assert.Contains(t, pkg.SID(), "pkg_")
}

func TestNewSoftwarePackage_RequiresSoftware(t *testing.T) {
	duration, price := monthlyPrice(t)

	_, err := NewSoftwarePackage("Pro Monthly", 0, duration, price, "")
	assert.Error(t, err)
}

func TestNewServicePackage(t *testing.T) {
	duration, price := monthlyPrice(t)

	pkg, err := NewServicePackage("Bundle", []uint{4, 7}, duration, price, "")
	require.NoError(t, err)

	assert.True(t, pkg.Type().IsService())
	assert.Nil(t, pkg.SoftwareID())
	assert.True(t, pkg.IncludesService(4))
	assert.True(t, pkg.IncludesService(7))
	assert.False(t, pkg.IncludesService(9))
}

func TestNewServicePackage_RequiresServices(t *testing.T) {
	duration, price := monthlyPrice(t)

	_, err := NewServicePackage("Bundle", nil, duration, price, "")
	assert.Error(t, err)
}

func TestNewPackage_Validation(t *testing.T) {
	duration, _ := monthlyPrice(t)

	_, err := NewSoftwarePackage("  ", 7, duration, vo.NewMoneyFromRupees(999, "INR"), "")
	assert.Error(t, err, "blank name rejected")

	_, err = NewSoftwarePackage("Pro", 7, duration, vo.NewMoney(0, "INR"), "")
	assert.Error(t, err, "zero price rejected")
}

func TestPackage_UpdateDetails(t *testing.T) {
	duration, price := monthlyPrice(t)
	pkg, err := NewSoftwarePackage("Pro Monthly", 7, duration, price, "old")
	require.NoError(t, err)

	yearly, err := vo.NewDuration(1, vo.UnitYears)
	require.NoError(t, err)

	require.NoError(t, pkg.UpdateDetails("Pro Yearly", yearly, vo.NewMoneyFromRupees(9999, "INR"), "new"))
	assert.Equal(t, "Pro Yearly", pkg.Name())
	assert.Equal(t, vo.UnitYears, pkg.Duration().Unit())
	assert.Equal(t, int64(999900), pkg.Price().AmountInPaise())
	assert.Equal(t, "new", pkg.Description())

	assert.Error(t, pkg.UpdateDetails("", yearly, pkg.Price(), ""))
}

func TestPackage_Rescope(t *testing.T) {
	duration, price := monthlyPrice(t)

	swPkg, err := NewSoftwarePackage("Pro", 7, duration, price, "")
	require.NoError(t, err)

	other := uint(9)
	require.NoError(t, swPkg.Rescope(&other, nil))
	assert.Equal(t, uint(9), *swPkg.SoftwareID())

	assert.Error(t, swPkg.Rescope(nil, []uint{1}), "software package cannot drop its software")

	svcPkg, err := NewServicePackage("Bundle", []uint{1}, duration, price, "")
	require.NoError(t, err)

	require.NoError(t, svcPkg.Rescope(nil, []uint{2, 3}))
	assert.Nil(t, svcPkg.SoftwareID())
	assert.Equal(t, []uint{2, 3}, svcPkg.ServiceIDs())

	assert.Error(t, svcPkg.Rescope(nil, nil), "service package needs at least one service")
}

func TestPackage_ToggleActive(t *testing.T) {
	duration, price := monthlyPrice(t)
	pkg, err := NewSoftwarePackage("Pro", 7, duration, price, "")
	require.NoError(t, err)

	assert.True(t, pkg.IsActive())
	pkg.ToggleActive()
	assert.False(t, pkg.IsActive())
	pkg.ToggleActive()
	assert.True(t, pkg.IsActive())
}
