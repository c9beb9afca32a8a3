package catalog

import "github.com/usestring/tripfinder-mcp/pkg/types"

const pexels = "https://images.pexels.com/photos/"

// seed is the built-in catalog served when no catalog file is configured.
var seed = []types.Destination{
	{
		ID:          1,
		Title:       "Rio de Janeiro",
		Location:    "Rio de Janeiro, RJ",
		Description: "Cidade maravilhosa com praias deslumbrantes, Cristo Redentor e cultura vibrante.",
		Image:       pexels + "351283/pexels-photo-351283.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       899,
		Rating:      4.8,
		ReviewCount: 247,
		TripType:    types.TripDomestic,
		Category:    types.CategoryStay,
		Tags:        []string{"Praia", "Cultura", "Premium"},
		Date:        "2024-01-15",
		HasGuide:    true,
	},
	{
		ID:          2,
		Title:       "Fernando de Noronha",
		Location:    "Pernambuco, PE",
		Description: "Paraíso natural com águas cristalinas e vida marinha exuberante.",
		Image:       pexels + "1450360/pexels-photo-1450360.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       1899,
		Rating:      4.9,
		ReviewCount: 189,
		TripType:    types.TripDomestic,
		Category:    types.CategoryStay,
		Tags:        []string{"Praia", "Natureza", "Premium"},
		Date:        "2024-02-20",
		HasGuide:    true,
	},
	{
		ID:          3,
		Title:       "Chapada Diamantina",
		Location:    "Bahia, BA",
		Description: "Aventura em meio a cachoeiras, grutas e paisagens de tirar o fôlego.",
		Image:       pexels + "417173/pexels-photo-417173.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       649,
		Rating:      4.6,
		ReviewCount: 156,
		TripType:    types.TripDomestic,
		Category:    types.CategoryOffer,
		Tags:        []string{"Aventura", "Natureza"},
		Date:        "2024-03-10",
		HasGuide:    true,
	},
	{
		ID:          4,
		Title:       "Paris",
		Location:    "França",
		Description: "Cidade luz com seus monumentos icônicos, museus e gastronomia refinada.",
		Image:       pexels + "338515/pexels-photo-338515.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       3299,
		Rating:      4.7,
		ReviewCount: 523,
		TripType:    types.TripInternational,
		Category:    types.CategoryStay,
		Tags:        []string{"Cultura", "Gastronomia", "Premium"},
		Date:        "2024-04-15",
		HasGuide:    true,
	},
	{
		ID:          5,
		Title:       "Tóquio",
		Location:    "Japão",
		Description: "Metrópole futurista que combina tradição milenar com tecnologia de ponta.",
		Image:       pexels + "315191/pexels-photo-315191.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       4199,
		Rating:      4.8,
		ReviewCount: 412,
		TripType:    types.TripInternational,
		Category:    types.CategoryTrip,
		Tags:        []string{"Cultura", "Tecnologia", "Guia"},
		Date:        "2024-05-20",
		HasGuide:    true,
	},
	{
		ID:          6,
		Title:       "Machu Picchu",
		Location:    "Peru",
		Description: "Sítio arqueológico inca nas montanhas dos Andes peruanos.",
		Image:       pexels + "259967/pexels-photo-259967.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       2299,
		Rating:      4.9,
		ReviewCount: 287,
		TripType:    types.TripInternational,
		Category:    types.CategoryTrip,
		Tags:        []string{"História", "Aventura", "Guia"},
		Date:        "2024-06-10",
		HasGuide:    true,
	},
	{
		ID:          7,
		Title:       "Florianópolis",
		Location:    "Santa Catarina, SC",
		Description: "Ilha da magia com 42 praias e vida noturna agitada.",
		Image:       pexels + "1287460/pexels-photo-1287460.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       599,
		Rating:      4.5,
		ReviewCount: 198,
		TripType:    types.TripDomestic,
		Category:    types.CategoryOffer,
		Tags:        []string{"Praia", "Vida Noturna"},
		Date:        "2024-07-15",
		HasGuide:    false,
	},
	{
		ID:          8,
		Title:       "Santorini",
		Location:    "Grécia",
		Description: "Ilha grega com arquitetura única, pores do sol inesquecíveis e vinhos excepcionais.",
		Image:       pexels + "161815/santorini-oia-sunset-greece-161815.jpeg?auto=compress&cs=tinysrgb&w=400",
		Price:       2899,
		Rating:      4.8,
		ReviewCount: 341,
		TripType:    types.TripInternational,
		Category:    types.CategoryStay,
		Tags:        []string{"Romance", "Arquitetura", "Premium"},
		Date:        "2024-08-20",
		HasGuide:    false,
	},
}

// Seed returns the built-in catalog.
func Seed() *Catalog {
	c, err := New(seed)
	if err != nil {
		panic("catalog: invalid seed: " + err.Error())
	}
	return c
}
