// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

// imrFields is the layout of the IMR summary page. Coordinates are
// (x0, y0, x1, y1) with y measured from the top of the page.
var imrFields = []FieldLocation{
	// Personnel. "Name" runs to x=250 to pick up the whole personnel line.
	{"Name", Rect{32.0, 70.0, 250.0, 72.0}},
	{"SSN", Rect{22.0, 73.0, 250.0, 85.0}},
	{"Rank", Rect{22.0, 87.0, 250.0, 98.0}},
	{"DOB", Rect{22.0, 100.0, 250.0, 112.0}},
	{"Sex", Rect{22.0, 113.0, 250.0, 125.0}},
	{"UIC", Rect{22.0, 126.0, 250.0, 138.0}},
	{"Description", Rect{22.0, 139.0, 250.0, 151.0}},
	{"Compo", Rect{22.0, 153.0, 250.0, 164.0}},
	{"Arrival Date", Rect{22.0, 166.0, 250.0, 178.0}},
	{"Location", Rect{22.0, 179.0, 250.0, 191.0}},
	{"Command", Rect{22.0, 192.0, 250.0, 204.0}},
	{"Duty Title", Rect{22.0, 205.0, 250.0, 217.0}},
	{"Duty AOC", Rect{22.0, 219.0, 250.0, 231.0}},
	{"VA Disability Rating", Rect{22.0, 232.0, 250.0, 244.0}},
	{"VA Disability Rating Date", Rect{22.0, 254.0, 250.0, 266.0}},

	// Physical
	{"PULHES Code", Rect{308.0, 60.0, 550.0, 72.0}},
	{"PULHES Source", Rect{308.0, 73.0, 550.0, 85.0}},
	{"PHA Date", Rect{308.0, 87.0, 600.0, 98.0}},
	{"Current Physical Exam Date", Rect{308.0, 100.0, 550.0, 112.0}},
	{"Physical Category", Rect{308.0, 113.0, 550.0, 125.0}},
	{"Height", Rect{308.0, 126.0, 550.0, 138.0}},
	{"Weight", Rect{308.0, 139.0, 550.0, 151.0}},
	{"Flight Status", Rect{308.0, 153.0, 550.0, 164.0}},

	// Dental
	{"Dental Class", Rect{22.0, 303.0, 300.0, 315.0}},
	{"Panograph", Rect{22.0, 316.0, 300.0, 328.0}},
	{"Last Dental Exam", Rect{22.0, 329.0, 300.0, 341.0}},

	// Labs
	{"Blood Type", Rect{308.0, 258.0, 600.0, 270.0}},
	{"HIV Test Date", Rect{308.0, 272.0, 600.0, 284.0}},
	{"DNA", Rect{308.0, 285.0, 600.0, 297.0}},
	{"Sickle Cell Screen", Rect{308.0, 298.0, 600.0, 310.0}},
	{"Sickle Cell Screen Date", Rect{308.0, 311.0, 600.0, 323.0}},
	{"Pregnant", Rect{308.0, 324.0, 600.0, 336.0}},
	{"G6PD Date", Rect{308.0, 338.0, 600.0, 350.0}},
	{"G6PD Status", Rect{308.0, 351.0, 600.0, 363.0}},

	// Vision
	{"Vision Class", Rect{22.0, 369.0, 300.0, 381.0}},
	{"Vision Screening Date", Rect{22.0, 382.0, 300.0, 394.0}},
	{"Two Pair of Glasses", Rect{22.0, 396.0, 300.0, 408.0}},
	{"Mask Inserts", Rect{22.0, 409.0, 300.0, 421.0}},
	{"Mission Required Contact Lenses (MRCL)", Rect{22.0, 422.0, 350.0, 434.0}},
	{"Military Combat Eye Protection", Rect{22.0, 444.0, 300.0, 456.0}},
	{"Military Combat Eye Protection Inserts", Rect{22.0, 458.0, 300.0, 480.0}},
	{"Last Prescription Date On File", Rect{22.0, 480.0, 300.0, 492.0}},

	// Immunizations
	{"IMM Profile", Rect{308.0, 390.0, 600.0, 402.0}},
	{"180 Day Meds", Rect{308.0, 404.0, 600.0, 416.0}},

	// Records
	{"Medication", Rect{308.0, 457.0, 600.0, 469.0}},
	{"Medical Warning Tags", Rect{22.0, 621.0, 600.0, 633.0}},
	{"Immunization Record", Rect{308.0, 483.0, 600.0, 495.0}},
	{"Summary Sheet of Medical Problems", Rect{308.0, 496.0, 600.0, 508.0}},
	{"Corrective Lens Prescription", Rect{308.0, 509.0, 600.0, 521.0}},

	// Hearing
	{"Hearing Class", Rect{22.0, 520.0, 300.0, 532.0}},
	{"Hearing Readiness Status", Rect{22.0, 533.0, 300.0, 545.0}},
	{"Audiogram Date", Rect{22.0, 546.0, 300.0, 558.0}},
	{"Triple or Single Flange Earplugs Issued?", Rect{22.0, 559.0, 300.0, 585.0}},

	// Deployment health assessments
	{"Latest Date for Pre", Rect{308.0, 549.0, 600.0, 561.0}},
	{"Latest Date for Post", Rect{308.0, 562.0, 500.0, 574.0}},
	{"Latest Date for PDHRA", Rect{308.0, 575.0, 500.0, 587.0}},

	{"Hearing Aid", Rect{22.0, 608.0, 300.0, 620.0}},
	{"Allergy / Conditions", Rect{22.0, 635.0, 300.0, 647.0}},
	{"Respiratory", Rect{22.0, 674.0, 300.0, 686.0}},
}

// IMR returns the built-in IMR summary page template. The returned value is
// a copy and may be modified by the caller.
func IMR() *Template {
	fields := make([]FieldLocation, len(imrFields))
	copy(fields, imrFields)
	return &Template{Name: "IMR", Fields: fields}
}
