package ghg

// Tablas estáticas de factores de emisión por alcance GHG Protocol.
// Generadas/contrastadas contra los datasets oficiales (DEFRA 2024, IPCC AR5,
// factores de red eléctrica nacionales). Regenerar con cmd/seed_factors.
//
// Invariantes: Factor >= 0; IDs únicos entre los cuatro alcances; Unit siempre
// con numerador y denominador explícitos.

// Alcance 1: emisiones directas (combustión estacionaria y móvil, fugitivas).
var scope1Factors = []EmissionFactor{
	{
		ID: "ef-s1-diesel", Name: "Diésel (combustión móvil)",
		Category: "Combustión móvil", Factor: 2.68, Unit: "kgCO2e/L",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Diesel para flota vehicular propia, factor blended CO2e",
	},
	{
		ID: "ef-s1-gasolina", Name: "Gasolina (combustión móvil)",
		Category: "Combustión móvil", Factor: 2.31, Unit: "kgCO2e/L",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Gasolina motor para vehículos propios (petrol)",
	},
	{
		ID: "ef-s1-gas-natural", Name: "Gas natural (combustión estacionaria)",
		Category: "Combustión estacionaria", Factor: 2.02, Unit: "kgCO2e/m3",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Gas natural en calderas y hornos (natural gas)",
	},
	{
		ID: "ef-s1-glp", Name: "GLP (combustión estacionaria)",
		Category: "Combustión estacionaria", Factor: 1.56, Unit: "kgCO2e/L",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Gas licuado de petróleo (LPG) en equipos estacionarios",
	},
	{
		ID: "ef-s1-acpm-generador", Name: "Diésel para generadores",
		Category: "Combustión estacionaria", Factor: 2.71, Unit: "kgCO2e/L",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Diesel en plantas eléctricas de respaldo",
	},
	{
		ID: "ef-s1-r410a", Name: "Refrigerante R-410A (fugas)",
		Category: "Emisiones fugitivas", Factor: 2088, Unit: "kgCO2e/kg",
		Source: "IPCC AR5", Year: "2024", Gases: "HFC",
		Description: "Recarga de refrigerante en equipos HVAC (GWP 100 años)",
	},
	{
		ID: "ef-s1-r134a", Name: "Refrigerante R-134a (fugas)",
		Category: "Emisiones fugitivas", Factor: 1430, Unit: "kgCO2e/kg",
		Source: "IPCC AR5", Year: "2024", Gases: "HFC",
		Description: "Recarga de refrigerante en refrigeración comercial",
	},
}

// Alcance 2: energía adquirida (electricidad, vapor).
var scope2Factors = []EmissionFactor{
	{
		ID: "ef-s2-electricidad-red", Name: "Electricidad de red nacional",
		Category: "Electricidad adquirida", Factor: 0.164, Unit: "kgCO2e/kWh",
		Source: "XM", Year: "2024", Region: "CO", Gases: "CO2",
		Description: "Factor de emisión de la red eléctrica (grid electricity)",
	},
	{
		ID: "ef-s2-electricidad-mx", Name: "Electricidad de red (México)",
		Category: "Electricidad adquirida", Factor: 0.438, Unit: "kgCO2e/kWh",
		Source: "SEMARNAT", Year: "2024", Region: "MX", Gases: "CO2",
		Description: "Factor de red del sistema eléctrico nacional mexicano",
	},
	{
		ID: "ef-s2-vapor", Name: "Vapor adquirido",
		Category: "Vapor y calor adquirido", Factor: 0.18, Unit: "kgCO2e/kWh",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Vapor industrial comprado a terceros (purchased steam)",
	},
}

// Alcance 3: cadena de valor.
var scope3Factors = []EmissionFactor{
	{
		ID: "ef-s3-acero", Name: "Acero adquirido",
		Category: "Bienes y servicios adquiridos", Factor: 1.85, Unit: "kgCO2e/kg",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Acero primario comprado a proveedores (steel, cradle-to-gate)",
	},
	{
		ID: "ef-s3-aluminio", Name: "Aluminio adquirido",
		Category: "Bienes y servicios adquiridos", Factor: 6.79, Unit: "kgCO2e/kg",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Aluminio primario comprado (aluminium, cradle-to-gate)",
	},
	{
		ID: "ef-s3-cemento", Name: "Cemento adquirido",
		Category: "Bienes y servicios adquiridos", Factor: 0.86, Unit: "kgCO2e/kg",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Cemento Portland comprado a proveedores (cement)",
	},
	{
		ID: "ef-s3-transporte-carga", Name: "Transporte de carga por carretera",
		Category: "Transporte y distribución", Factor: 0.107, Unit: "kgCO2e/km",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Camión de carga promedio por kilómetro recorrido (freight)",
	},
	{
		ID: "ef-s3-vuelo-corto", Name: "Viaje aéreo de corta distancia",
		Category: "Viajes de negocio", Factor: 0.154, Unit: "kgCO2e/km",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Vuelo doméstico por pasajero-kilómetro (short haul flight)",
	},
	{
		ID: "ef-s3-vuelo-largo", Name: "Viaje aéreo de larga distancia",
		Category: "Viajes de negocio", Factor: 0.148, Unit: "kgCO2e/km",
		Source: "DEFRA", Year: "2024", Gases: "CO2, CH4, N2O",
		Description: "Vuelo internacional por pasajero-kilómetro (long haul flight)",
	},
	{
		ID: "ef-s3-residuos-relleno", Name: "Residuos a relleno sanitario",
		Category: "Residuos generados", Factor: 0.467, Unit: "kgCO2e/kg",
		Source: "DEFRA", Year: "2024", Gases: "CH4",
		Description: "Residuos mixtos dispuestos en relleno (landfill waste)",
	},
	{
		ID: "ef-s3-agua", Name: "Agua potable suministrada",
		Category: "Bienes y servicios adquiridos", Factor: 0.149, Unit: "kgCO2e/m3",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Suministro de agua potable por metro cúbico (water supply)",
	},
}

// Alcance 4: emisiones evitadas y remociones. Se reportan aparte, nunca se
// netean contra los alcances 1-3.
var scope4Factors = []EmissionFactor{
	{
		ID: "ef-s4-solar-evitada", Name: "Generación solar propia (evitada)",
		Category: "Emisiones evitadas", Factor: 0.164, Unit: "kgCO2e/kWh",
		Source: "XM", Year: "2024", Region: "CO", Gases: "CO2",
		Description: "Electricidad de red desplazada por autogeneración solar",
	},
	{
		ID: "ef-s4-reforestacion", Name: "Reforestación (remoción)",
		Category: "Remociones", Factor: 22, Unit: "kgCO2e/unidad",
		Source: "IPCC", Year: "2024", Gases: "CO2",
		Description: "Captura anual promedio por árbol plantado en zona tropical",
	},
	{
		ID: "ef-s4-reciclaje-papel", Name: "Reciclaje de papel (evitada)",
		Category: "Emisiones evitadas", Factor: 0.89, Unit: "kgCO2e/kg",
		Source: "DEFRA", Year: "2024", Gases: "CO2",
		Description: "Emisión evitada por tonelada de papel reciclado vs virgen",
	},
}
