package region

import (
	"strings"
	"testing"

	"weather-dashboard/models"
)

func TestResolve_AllEntries(t *testing.T) {
	count := 0
	for _, p := range provinces {
		for _, c := range p.Cities {
			got, err := Resolve(p.Name, c.Name)
			if err != nil {
				t.Fatalf("Resolve(%s, %s) failed: %v", p.Name, c.Name, err)
			}
			if got == "" {
				t.Errorf("Resolve(%s, %s) returned empty string", p.Name, c.Name)
			}
			if strings.Contains(got, ",") {
				t.Errorf("Resolve(%s, %s) = %q, expected a single component", p.Name, c.Name, got)
			}
			for _, d := range c.Districts {
				if strings.Contains(got, d) {
					t.Errorf("Resolve(%s, %s) = %q contains district %q", p.Name, c.Name, got, d)
				}
			}
			count++
		}
	}
	if count == 0 {
		t.Fatal("Region table is empty")
	}
}

func TestResolve_Known(t *testing.T) {
	tests := []struct {
		province, city, want string
	}{
		{"서울특별시", "강남구", "Gangnam-gu"},
		{"부산광역시", "해운대구", "Haeundae-gu"},
		{"경기도", "수원시", "Suwon-si"},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.province, tt.city)
		if err != nil {
			t.Fatalf("Resolve(%s, %s) failed: %v", tt.province, tt.city, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%s, %s) = %q, want %q", tt.province, tt.city, got, tt.want)
		}
	}
}

func TestResolve_UnknownCity(t *testing.T) {
	_, err := Resolve("서울특별시", "없는구")
	if err == nil {
		t.Fatal("Expected error for unknown city")
	}
	if !models.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %T: %v", err, err)
	}
}

func TestResolve_UnknownProvince(t *testing.T) {
	_, err := Resolve("없는도", "강남구")
	if !models.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestResolve_SameCityNameInTwoProvinces(t *testing.T) {
	seoul, _ := Resolve("서울특별시", "중구")
	busan, _ := Resolve("부산광역시", "중구")
	if seoul != "Jung-gu" || busan != "Jung-gu" {
		t.Errorf("Unexpected queries: %q, %q", seoul, busan)
	}

	s, _ := Lookup("서울특별시", "중구")
	b, _ := Lookup("부산광역시", "중구")
	if s.English == b.English {
		t.Errorf("Expected distinct English labels, both %q", s.English)
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c, err := Lookup("서울특별시", "강남구")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	c.Districts[0] = "changed"

	again, _ := Lookup("서울특별시", "강남구")
	if again.Districts[0] == "changed" {
		t.Error("Lookup exposed the shared table")
	}
}

func TestProvincesOrder(t *testing.T) {
	got := Provinces()
	if len(got) != len(provinces) {
		t.Fatalf("Expected %d provinces, got %d", len(provinces), len(got))
	}
	if got[0] != "서울특별시" {
		t.Errorf("Expected 서울특별시 first, got %s", got[0])
	}
}

func TestCities(t *testing.T) {
	cities, err := Cities("제주특별자치도")
	if err != nil {
		t.Fatalf("Cities failed: %v", err)
	}
	if len(cities) == 0 {
		t.Fatal("Expected cities for 제주특별자치도")
	}

	if _, err := Cities("없는도"); !models.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestAddress(t *testing.T) {
	if got := Address("서울특별시", "강남구", "역삼동"); got != "서울특별시 강남구 역삼동" {
		t.Errorf("Unexpected address %q", got)
	}
	if got := Address("서울특별시", "강남구", ""); got != "서울특별시 강남구" {
		t.Errorf("Unexpected address %q", got)
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate(" 부산 "); got != "Busan" {
		t.Errorf("Expected Busan, got %q", got)
	}
	if got := Translate("Tokyo"); got != "Tokyo" {
		t.Errorf("Expected passthrough, got %q", got)
	}
}

func TestForeignCities_ReturnsCopy(t *testing.T) {
	groups := ForeignCities()
	groups[0].Cities[0] = "changed"
	if ForeignCities()[0].Cities[0] == "changed" {
		t.Error("ForeignCities exposed the shared list")
	}
}
