package models

// Category names of the fixed taxonomy.
const (
	CategoryFood           = "Ăn uống"
	CategoryTransport      = "Di chuyển"
	CategoryEntertainment  = "Giải trí"
	CategoryShopping       = "Mua sắm"
	CategoryHealth         = "Y tế"
	CategoryEducation      = "Học tập"
	CategorySavings        = "Tiết kiệm"
	CategoryBills          = "Hóa đơn"
	CategoryOther          = "Khác"
	CategorySalary         = "Lương"
	CategoryBusinessIncome = "Thu nhập kinh doanh"
	CategoryInvestment     = "Đầu tư"
	CategoryOtherIncome    = "Thu nhập khác"
)

// Forecast confidence labels.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
)

// Trend directions.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// File permissions for files this tool writes.
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
