package shared

// Demo data for cmd/seed. Rooms are created under their hotel through the
// same services the API uses, so validation and defaults apply.

type SeedRoom struct {
	Name     string
	Capacity int
	RoomType string
	Price    float64
}

type SeedHotel struct {
	Name    string
	City    string
	Address string
	Phone   string
	Email   string
	Rooms   []SeedRoom
}

var SeedHotels = []SeedHotel{
	{
		Name: "Hotel Costanera", City: "Buenos Aires",
		Address: "Av. Rafael Obligado 1221", Phone: "+54 11 4312 0000",
		Email: "reservas@costanera.example",
		Rooms: []SeedRoom{
			{Name: "101", Capacity: 2, RoomType: "double", Price: 120},
			{Name: "102", Capacity: 1, RoomType: "single", Price: 80},
			{Name: "201", Capacity: 4, RoomType: "suite", Price: 260},
		},
	},
	{
		Name: "Gran Azul", City: "Mar del Plata",
		Address: "Bv. Marítimo 3550", Phone: "+54 223 495 1111",
		Email: "info@granazul.example",
		Rooms: []SeedRoom{
			{Name: "A1", Capacity: 2, RoomType: "double", Price: 95},
			{Name: "A2", Capacity: 3, RoomType: "triple", Price: 140},
		},
	},
	{
		Name: "Posada del Cerro", City: "Salta",
		Address: "Caseros 44",
		Rooms: []SeedRoom{
			{Name: "Cerro 1", Capacity: 2, RoomType: "double", Price: 70},
		},
	},
}
