package client

import "testing"

func TestFullName(t *testing.T) {
	c := Client{PersonalInfo: PersonalInfo{FirstName: "Maria", LastName: "Papadopoulou"}}
	if got := c.FullName(); got != "Maria Papadopoulou" {
		t.Fatalf("FullName() = %q", got)
	}

	c = Client{PersonalInfo: PersonalInfo{FirstName: "Maria"}}
	if got := c.FullName(); got != "Maria" {
		t.Fatalf("FullName() = %q", got)
	}
}

func TestSearchRows(t *testing.T) {
	clients := []Client{
		{ID: 1, PersonalInfo: PersonalInfo{FirstName: "Maria", LastName: "Papadopoulou", Phone: "6900000001", Email: "maria@example.gr"}},
		{ID: 2, PersonalInfo: PersonalInfo{FirstName: "Nikos"}},
	}

	rows := SearchRows(clients)
	if len(rows) != 2 {
		t.Fatalf("len = %d", len(rows))
	}
	if rows[0].FullName != "Maria Papadopoulou" || rows[0].Phone != "6900000001" || rows[0].Email != "maria@example.gr" {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if rows[1].FullName != "Nikos" {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

func TestFromBackendList(t *testing.T) {
	dtos := []ReadOnlyDTO{
		{ID: 1, PersonalInfo: PersonalInfo{FirstName: "Maria"}, VAT: "123456789"},
		{ID: 2, PersonalInfo: PersonalInfo{FirstName: "Nikos"}},
	}

	clients := FromBackendList(dtos)
	if len(clients) != 2 {
		t.Fatalf("len = %d", len(clients))
	}
	if clients[0].VAT != "123456789" || clients[1].PersonalInfo.FirstName != "Nikos" {
		t.Fatalf("mapping lost fields: %+v", clients)
	}
}
