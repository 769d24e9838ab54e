package taxonomy

import "tdnguyen/vispend/internal/models"

// defaultGroups is the built-in taxonomy. Order matters: classification ties
// are broken by position in this list.
func defaultGroups() []Group {
	return []Group{
		{
			Name:      models.CategoryFood,
			Direction: models.DirectionExpense,
			Keywords: []string{
				"ăn", "uống", "cơm", "phở", "bún", "cà phê", "trà", "nước",
				"sáng", "trưa", "tối", "bữa", "nhà hàng", "quán",
			},
		},
		{
			Name:      models.CategoryTransport,
			Direction: models.DirectionExpense,
			Keywords: []string{
				"xe", "taxi", "grab", "uber", "xăng", "dầu", "xe bus",
				"tàu", "máy bay", "đi lại", "di chuyển",
			},
		},
		{
			Name:      models.CategoryEntertainment,
			Direction: models.DirectionExpense,
			Keywords: []string{
				"xem phim", "game", "chơi", "giải trí", "karaoke", "bar",
				"club", "sở thú", "công viên",
			},
		},
		{
			Name:      models.CategoryShopping,
			Direction: models.DirectionExpense,
			Keywords:  []string{"mua", "sắm", "quần áo", "giày dép", "đồ", "hàng"},
		},
		{
			Name:      models.CategoryHealth,
			Direction: models.DirectionExpense,
			Keywords:  []string{"bác sĩ", "bệnh viện", "thuốc", "khám", "y tế", "sức khỏe"},
		},
		{
			Name:      models.CategoryEducation,
			Direction: models.DirectionExpense,
			Keywords:  []string{"học", "sách", "khóa học", "trường", "học phí"},
		},
		{
			Name:      models.CategorySavings,
			Direction: models.DirectionExpense,
			Keywords:  []string{"tiết kiệm", "gửi tiết kiệm", "đầu tư"},
		},
		{
			Name:      models.CategorySalary,
			Direction: models.DirectionIncome,
			Keywords:  []string{"lương", "thu nhập", "tiền lương"},
		},
		{
			Name:      models.CategoryBusinessIncome,
			Direction: models.DirectionIncome,
			Keywords:  []string{"bán", "kinh doanh", "doanh thu"},
		},
	}
}

// defaultTips maps category names to concrete saving actions. Categories
// without an entry get generic tips.
func defaultTips() map[string][]string {
	return map[string][]string{
		models.CategoryFood: {
			"Nấu ăn tại nhà thay vì ăn ngoài 2-3 lần/tuần",
			"Lập danh sách mua sắm trước khi đi chợ/siêu thị",
			"Tận dụng khuyến mãi và mua số lượng lớn cho đồ khô",
			"Hạn chế đặt đồ ăn online, tự nấu sẽ tiết kiệm 30-50%",
		},
		models.CategoryTransport: {
			"Sử dụng phương tiện công cộng thay vì taxi/grab",
			"Đi bộ hoặc xe đạp cho quãng đường ngắn",
			"Sử dụng ứng dụng chia sẻ xe để giảm chi phí",
			"Lên kế hoạch lộ trình để tránh đi lại không cần thiết",
		},
		models.CategoryEntertainment: {
			"Tìm các hoạt động miễn phí trong khu vực",
			"Sử dụng thẻ thành viên để được giảm giá",
			"Hạn chế xem phim rạp, xem tại nhà hoặc chờ phim cũ",
			"Tổ chức các buổi tụ tập tại nhà thay vì ra ngoài",
		},
		models.CategoryShopping: {
			"Mua sắm theo nhu cầu thực sự, tránh mua theo cảm xúc",
			"So sánh giá trước khi mua, đợi sale nếu không gấp",
			"Mua đồ chất lượng tốt một lần thay vì mua rẻ nhiều lần",
			"Bán lại đồ không dùng đến trên các sàn thương mại điện tử",
		},
		models.CategoryHealth: {
			"Khám sức khỏe định kỳ để phát hiện sớm, tránh chi phí lớn",
			"Mua bảo hiểm y tế để được hỗ trợ chi phí",
			"Tập thể dục đều đặn để phòng bệnh",
			"So sánh giá thuốc ở nhiều nhà thuốc khác nhau",
		},
		models.CategoryBills: {
			"Tắt các thiết bị điện khi không sử dụng",
			"Sử dụng bóng đèn LED tiết kiệm điện",
			"Kiểm tra và sửa chữa rò rỉ nước",
			"Đàm phán lại gói cước internet/điện thoại phù hợp",
		},
	}
}

// Default returns the compiled-in taxonomy.
func Default() *Taxonomy {
	return New(defaultGroups(), defaultTips())
}
