package ir

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		decl Decl
		want Category
	}{
		{&Prelude{}, CategoryLoader},
		{&Handle{Name: "Instance"}, CategoryHandle},
		{&Typedef{Name: "Bool32"}, CategoryType},
		{&Struct{Name: "Extent2D"}, CategoryType},
		{&Union{Name: "ClearValue"}, CategoryType},
		{&FuncPtr{Name: "PFN_vkVoidFunction"}, CategoryType},
		{&Enum{Name: "Result"}, CategoryEnum},
		{&Bitflags{Name: "QueueFlags"}, CategoryEnum},
		{&Constant{Name: "UUID_SIZE"}, CategoryConstant},
		{&FnTable{Name: "InstanceFnV1_0"}, CategoryCommand},
	}

	for _, tt := range tests {
		u := NewUnit(tt.decl)
		if got := u.Category(); got != tt.want {
			t.Errorf("%s (%s): category = %s, want %s", u.Name(), u.Kind(), got, tt.want)
		}
	}
}

func TestResolvable(t *testing.T) {
	tests := map[Form]bool{
		FormNumber: true,
		FormHex:    true,
		FormBitPos: true,
		FormExpr:   false,
		FormText:   false,
	}
	for form, want := range tests {
		if got := (ConstValue{Form: form}).Resolvable(); got != want {
			t.Errorf("%s: Resolvable = %v, want %v", form, got, want)
		}
	}
}

func TestIsVoid(t *testing.T) {
	if !IsVoid(Void{}) {
		t.Error("IsVoid(Void{}) = false")
	}
	if IsVoid(Pointer{Elem: Void{}}) {
		t.Error("IsVoid(pointer to void) = true")
	}
}
