package catalog

import "smartedu/backend/models"

// Мок-каталог курсов. Заменяет реальный источник данных на время разработки.
var courses = []models.Course{
	{
		ID: "1", Title: "JavaScript Cơ Bản - Từ Zero đến Hero",
		Instructor: "Nguyễn Văn A", Price: 299000, OriginalPrice: 599000,
		Rating: 4.8, Students: 15420, Duration: "32 giờ",
		Image:    "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-10", Certificate: true,
	},
	{
		ID: "2", Title: "React.js - Xây dựng ứng dụng web hiện đại",
		Instructor: "Trần Thị B", Price: 399000, OriginalPrice: 799000,
		Rating: 4.9, Students: 12350, Duration: "45 giờ",
		Image:    "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-18", Certificate: true,
	},
	{
		ID: "3", Title: "Node.js Backend Development",
		Instructor: "Lê Minh C", Price: 449000,
		Rating: 4.7, Students: 8940, Duration: "38 giờ",
		Image:    "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-05", Certificate: true,
	},
	{
		ID: "4", Title: "TypeScript cho React Developers",
		Instructor: "Phạm Hoàng D", Price: 250000, OriginalPrice: 500000,
		Rating: 4.6, Students: 6780, Duration: "24 giờ",
		Image:    "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Advanced", Language: "Tiếng Việt",
		LastUpdated: "2023-12-28", Certificate: true,
	},
	{
		ID: "5", Title: "Python cho Data Science và Machine Learning",
		Instructor: "Võ Thị E", Price: 549000, OriginalPrice: 899000,
		Rating: 4.8, Students: 11200, Duration: "52 giờ",
		Image:    "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-15", Certificate: true,
	},
	{
		ID: "6", Title: "Frontend Developer Roadmap 2024",
		Instructor: "Trần Thị B", Price: 650000,
		Rating: 4.9, Students: 9850, Duration: "60 giờ",
		Image:    "https://images.unsplash.com/photo-1547658719-da2b51169166?w=300&h=200&fit=crop",
		Category: "Lập trình", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-20", Certificate: true,
	},
	{
		ID: "7", Title: "Tiếng Anh Giao Tiếp Cho Người Đi Làm",
		Instructor: "Sarah Johnson", Price: 350000, OriginalPrice: 700000,
		Rating: 4.7, Students: 18600, Duration: "40 giờ",
		Image:    "https://images.unsplash.com/photo-1543165796-5426273eaab3?w=300&h=200&fit=crop",
		Category: "Ngoại ngữ", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-08", Certificate: true,
	},
	{
		ID: "8", Title: "Luyện Thi IELTS 7.0+ Cấp Tốc",
		Instructor: "David Smith", Price: 599000, OriginalPrice: 1200000,
		Rating: 4.9, Students: 14300, Duration: "55 giờ",
		Image:    "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=300&h=200&fit=crop",
		Category: "Ngoại ngữ", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-12", Certificate: true,
	},
	{
		ID: "9", Title: "Tiếng Anh Thương Mại Nâng Cao",
		Instructor: "Sarah Johnson", Price: 280000,
		Rating: 4.5, Students: 5400, Duration: "28 giờ",
		Image:    "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=300&h=200&fit=crop",
		Category: "Ngoại ngữ", Level: "Advanced", Language: "Tiếng Việt",
		LastUpdated: "2023-12-20",
	},
	{
		ID: "10", Title: "Facebook Ads Từ A-Z Cho Người Mới",
		Instructor: "Ngô Quang F", Price: 320000, OriginalPrice: 640000,
		Rating: 4.6, Students: 7800, Duration: "26 giờ",
		Image:    "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=300&h=200&fit=crop",
		Category: "Marketing", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-03", Certificate: true,
	},
	{
		ID: "11", Title: "SEO Website Lên Top Google",
		Instructor: "Đặng Văn G", Price: 450000,
		Rating: 4.7, Students: 6200, Duration: "34 giờ",
		Image:    "https://images.unsplash.com/photo-1562577309-4932fdd64cd1?w=300&h=200&fit=crop",
		Category: "Marketing", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-16", Certificate: true,
	},
	{
		ID: "12", Title: "Digital Marketing Toàn Diện 2024",
		Instructor: "Ngô Quang F", Price: 750000, OriginalPrice: 1500000,
		Rating: 4.8, Students: 10500, Duration: "48 giờ",
		Image:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=300&h=200&fit=crop",
		Category: "Marketing", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-19", Certificate: true,
	},
	{
		ID: "13", Title: "UI/UX Design Fundamentals",
		Instructor: "Phạm Thị D", Price: 350000, OriginalPrice: 700000,
		Rating: 4.8, Students: 8900, Duration: "30 giờ",
		Image:    "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=300&h=200&fit=crop",
		Category: "Thiết kế", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-14", Certificate: true,
	},
	{
		ID: "14", Title: "Figma Masterclass - Design System",
		Instructor: "Nguyễn Văn P", Price: 280000,
		Rating: 4.7, Students: 5600, Duration: "22 giờ",
		Image:    "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=300&h=200&fit=crop",
		Category: "Thiết kế", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2024-01-07", Certificate: true,
	},
	{
		ID: "15", Title: "Photoshop Cho Designer Chuyên Nghiệp",
		Instructor: "Hoàng Thị H", Price: 420000, OriginalPrice: 840000,
		Rating: 4.6, Students: 7200, Duration: "36 giờ",
		Image:    "https://images.unsplash.com/photo-1572044162444-ad60f128bdea?w=300&h=200&fit=crop",
		Category: "Thiết kế", Level: "Intermediate", Language: "Tiếng Việt",
		LastUpdated: "2023-12-30", Certificate: true,
	},
	{
		ID: "16", Title: "Khởi Nghiệp Tinh Gọn - Lean Startup",
		Instructor: "Bùi Văn I", Price: 480000,
		Rating: 4.5, Students: 4300, Duration: "25 giờ",
		Image:    "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=300&h=200&fit=crop",
		Category: "Kinh doanh", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-02",
	},
	{
		ID: "17", Title: "Quản Lý Tài Chính Cá Nhân",
		Instructor: "Lý Thị K", Price: 199000, OriginalPrice: 400000,
		Rating: 4.7, Students: 9600, Duration: "18 giờ",
		Image:    "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=300&h=200&fit=crop",
		Category: "Kinh doanh", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-11", Certificate: true,
	},
	{
		ID: "18", Title: "Chiến Lược Kinh Doanh Hiện Đại",
		Instructor: "Bùi Văn I", Price: 680000, OriginalPrice: 1360000,
		Rating: 4.6, Students: 3800, Duration: "32 giờ",
		Image:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=300&h=200&fit=crop",
		Category: "Kinh doanh", Level: "Advanced", Language: "Tiếng Việt",
		LastUpdated: "2023-12-25", Certificate: true,
	},
	{
		ID: "19", Title: "Piano Cơ Bản Cho Người Mới Bắt Đầu",
		Instructor: "Trương Thị L", Price: 260000,
		Rating: 4.8, Students: 6800, Duration: "20 giờ",
		Image:    "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=300&h=200&fit=crop",
		Category: "Âm nhạc", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-06", Certificate: true,
	},
	{
		ID: "20", Title: "Guitar Đệm Hát Trong 30 Ngày",
		Instructor: "Phan Văn M", Price: 230000, OriginalPrice: 460000,
		Rating: 4.7, Students: 8100, Duration: "16 giờ",
		Image:    "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=300&h=200&fit=crop",
		Category: "Âm nhạc", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-09",
	},
	{
		ID: "21", Title: "Yoga Cho Sức Khỏe và Tinh Thần",
		Instructor: "Đỗ Thị N", Price: 180000,
		Rating: 4.9, Students: 12400, Duration: "15 giờ",
		Image:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=300&h=200&fit=crop",
		Category: "Sức khỏe", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-17", Certificate: true,
	},
	{
		ID: "22", Title: "Dinh Dưỡng Khoa Học Cho Gia Đình",
		Instructor: "Mai Văn O", Price: 210000, OriginalPrice: 420000,
		Rating: 4.5, Students: 4900, Duration: "12 giờ",
		Image:    "https://images.unsplash.com/photo-1490645935967-10de6ba17061?w=300&h=200&fit=crop",
		Category: "Sức khỏe", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2023-12-22",
	},
	{
		ID: "23", Title: "Kỹ Năng Thuyết Trình Chuyên Nghiệp",
		Instructor: "Lý Thị K", Price: 310000,
		Rating: 4.6, Students: 5100, Duration: "14 giờ",
		Image:    "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=300&h=200&fit=crop",
		Category: "Khác", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2024-01-04", Certificate: true,
	},
	{
		ID: "24", Title: "Nhiếp Ảnh Cơ Bản Với Smartphone",
		Instructor: "Hồ Văn Q", Price: 150000, OriginalPrice: 300000,
		Rating: 4.4, Students: 3600, Duration: "10 giờ",
		Image:    "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=300&h=200&fit=crop",
		Category: "Khác", Level: "Beginner", Language: "Tiếng Việt",
		LastUpdated: "2023-12-18",
	},
}
