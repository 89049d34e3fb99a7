package memory

import (
	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
)

func seedMembers() []member.Member {
	return []member.Member{
		{ID: 1, Nama: "Kaifa Robby", NIM: "2021001", Angkatan: "2024", Email: "kaifa@example.com", Phone: "08123456789", Divisi: "BPH", Jabatan: "Ketua HMPS"},
		{ID: 2, Nama: "M. Syahril Ramadhan", NIM: "2021002", Angkatan: "2024", Email: "syahril@example.com", Phone: "08123456790", Divisi: "BPH", Jabatan: "Wakil Ketua"},
		{ID: 3, Nama: "Yusufi Noviati", NIM: "2021003", Angkatan: "2024", Email: "yusufi@example.com", Phone: "08123456791", Divisi: "BPH", Jabatan: "Sekretaris 1"},
		{ID: 4, Nama: "Devita Rizqi Maulida", NIM: "2021004", Angkatan: "2024", Email: "devita@example.com", Phone: "08123456792", Divisi: "BPH", Jabatan: "Sekretaris 2"},
		{ID: 5, Nama: "Devi Mustika", NIM: "2021005", Angkatan: "2021", Email: "devi@example.com", Phone: "08123456793", Divisi: "BPH", Jabatan: "Bendahara 1"},
		{ID: 6, Nama: "Nabila Juanita Enas", NIM: "2021006", Angkatan: "2024", Email: "nabila@example.com", Phone: "08123456794", Divisi: "BPH", Jabatan: "Bendahara 2"},
		{ID: 7, Nama: "Fitri Amelia", NIM: "2021007", Angkatan: "2024", Email: "fitri@example.com", Phone: "08123456795", Divisi: "PSDI", Jabatan: "Ketua PSDI"},
		{ID: 8, Nama: "Amalia Putri Setya Aryana", NIM: "2021008", Angkatan: "2024", Email: "amalia@example.com", Phone: "08123456796", Divisi: "KBA", Jabatan: "Ketua KBA"},
	}
}

func seedAgenda() []agenda.Item {
	return []agenda.Item{
		{
			ID: 1, Judul: "Makrab HMPS Sains Data", Tanggal: "2025-11-29", Waktu: "09:00 WIB",
			Lokasi: "Rumah Pengurus", Deskripsi: "Malam keakraban untuk mempererat hubungan antar anggota HMPS",
			Peserta: 24, Status: agenda.StatusUpcoming,
		},
		{
			ID: 2, Judul: "Ruang Riset", Tanggal: "2025-11-30", Waktu: "14:00 WIB",
			Lokasi: "Online (Zoom)", Deskripsi: "Diskusi dan sharing tentang penelitian sains data",
			Peserta: 15, Status: agenda.StatusUpcoming,
		},
		{
			ID: 3, Judul: "Sidang Paripurna", Tanggal: "2025-12-10", Waktu: "10:00 WIB",
			Lokasi: "Auditorium", Deskripsi: "Rapat koordinasi dan evaluasi kegiatan HMPS",
			Peserta: 24, Status: agenda.StatusUpcoming,
		},
		{
			ID: 4, Judul: "Seminar Sains Data", Tanggal: "2025-05-01", Waktu: "09:00 WIB",
			Lokasi: "Gedung A Lantai 3", Deskripsi: "Seminar nasional tentang perkembangan sains data",
			Peserta: 70, Status: agenda.StatusCompleted,
		},
	}
}

func seedPhotos() []gallery.Photo {
	return []gallery.Photo{
		{
			ID: 1, Judul: "Seminar Sains Data 2025", Deskripsi: "Dokumentasi seminar nasional sains data",
			ImageURL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400&h=300&fit=crop",
			Tanggal:  "2025-05-01", Kategori: "Seminar", Fotografer: gallery.DefaultFotografer,
		},
	}
}

func seedVideos() []video.Video {
	return []video.Video{
		{
			ID: 1, Judul: "Introduction to Data Science",
			Deskripsi: "Pengenalan dasar tentang sains data untuk mahasiswa baru",
			Thumbnail: video.DefaultThumbnailURL,
			VideoURL:  "#", Pembicara: "Dr. Ahmad Hidayat", Tanggal: "2024-11-15",
			Views: 245, Durasi: "45:30",
		},
	}
}

func seedOutcomes() []outcome.Outcome {
	return []outcome.Outcome{
		{ID: 1, Nama: "Tugas 1 - Story Telling", Matkul: "Statistika dan Probabilitas", Mahasiswa: "Ahmad Zulfikar", NIM: "2021001", Status: outcome.StatusSelesai, Deadline: "2024-11-30"},
		{ID: 2, Nama: "Tugas 2 - Video Presentasi", Matkul: "Pengenalan Sains Data", Mahasiswa: "Siti Aisyah", NIM: "2021002", Status: outcome.StatusRevisi, Deadline: "2024-12-05"},
		{ID: 3, Nama: "Project Akhir", Matkul: "Algoritma dan Pemrograman", Mahasiswa: "Budi Santoso", NIM: "2021003", Status: outcome.StatusBelum, Deadline: "2024-12-15"},
	}
}

func seedCourses() []outcome.Course {
	return []outcome.Course{
		{ID: "mk1", Nama: "Bahasa Inggris Komunikasi Bisnis", Dosen: "M. Alfan, S.Hum., M.Hum.", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 1},
		{ID: "mk2", Nama: "Moderasi Beragama", Dosen: "M. Romli M.S.I", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 1},
		{ID: "mk3", Nama: "Pengantar Algoritma dan Pemrograman", Dosen: "Wilda Yulia Rusyida, M.Sc.", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 0},
		{ID: "mk4", Nama: "Pancasila dan Kewarganegaraan", Dosen: "Hanik Rosyidah, S.SY., M.H", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 3},
		{ID: "mk5", Nama: "Bahasa Arab untuk Sains", Dosen: "Agus Khamid, Lc., M.pd.", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 4},
		{ID: "mk6", Nama: "Science Entrepreneurship", Dosen: "Nalim, M.Sc.", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 2},
		{ID: "mk7", Nama: "Compendium Al-Quran dan Hadist dalam Sains", Dosen: "Syamsul Arifin", Semester: "Ganjil 2024", TotalOutcome: 4, Selesai: 2},
		{ID: "mk8", Nama: "Bahasa Indonesia", Dosen: "Ulfa Kurniasih, M.Hum.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 3},
		{ID: "mk9", Nama: "Analisis Numerik", Dosen: "Nalim, M.Sc.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 4},
		{ID: "mk10", Nama: "Metodologi Studi Islam", Dosen: "Syamsul Arifin, M.E", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 2},
		{ID: "mk11", Nama: "Academic Writing", Dosen: "Umi Mahmudah, M.SC., PH.D", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 1},
		{ID: "mk12", Nama: "Harmonisasi Sains dan Agama", Dosen: "Dr. Ahmad Hidayat", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 3},
		{ID: "mk13", Nama: "Pengenalan Sains Data", Dosen: "Zulaikhah Fitri Nur Ngaisah, M.ag.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 4},
		{ID: "mk14", Nama: "Statistika dan Probabilitas", Dosen: "Drajat Stiawan, M.Si.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 2},
		{ID: "mk15", Nama: "Algoritma dan Pemrograman", Dosen: "Rohmad Abidin, M.kom.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 0},
		{ID: "mk16", Nama: "Data Governance", Dosen: "Abdul Majid, M.kom.", Semester: "Genap 2025", TotalOutcome: 4, Selesai: 3},
	}
}

func seedDocuments() []document.Document {
	return []document.Document{
		{ID: 1, Nama: "AD/ART HMPS Sains Data 2024", Kategori: document.KategoriADART, TanggalUpload: "2024-01-15", URL: "#"},
	}
}

func seedAchievements() []achievement.Achievement {
	return []achievement.Achievement{
		{
			ID: 1, Judul: "Best Presenter", Tahun: 2025,
			Deskripsi: "Tiga anggota HMPS Sains Data berhasil meraih penghargaan Best Presenter dalam kegiatan publikasi Universitas Terbuka. " +
				"Prestasi ini menjadi bukti nyata bahwa mahasiswa Sains Data tidak hanya unggul dalam kompetensi akademik, " +
				"tetapi juga mampu menyampaikan gagasan dan hasil penelitian secara komunikatif, sistematis, dan profesional.",
		},
	}
}

func seedProfile() org.Profile {
	return org.Profile{
		NamaOrganisasi: "HMPS Sains Data UIN K.H. Abdurrahman Wahid",
		TahunBerdiri:   "2025",
		Visi:           "Mewujudkan HMPS Sains Data yang solid, komunikatif, dan akademis untuk menjalin keselarasan yang harmonis.",
		Misi: []string{
			"Membentuk Mahasiswa Sains Data yang interaktif.",
			"Mewujudkan nilai demokrasi yang sehat dan aktif di lingkungan mahasiswa sains data.",
			"Mewujudkan peran mahasiswa yang berani menjadi Agen Pembangunan, Agen Perubahan, dan Agen Pengembangan di era modern.",
		},
		Deskripsi: "HMPS Sains Data adalah wadah bagi mahasiswa untuk berkembang secara akademis, berinteraksi secara komunikatif, " +
			"dan membangun kebersamaan yang solid. Himpunan ini mendorong terciptanya lingkungan demokratis yang sehat serta " +
			"membentuk mahasiswa yang berani menjadi agen pembangunan, perubahan, dan pengembangan di era modern",
	}
}

func seedStructure() []org.Position {
	return []org.Position{
		{Jabatan: "Ketua HMPS", Nama: "Kaifa Robby"},
		{Jabatan: "Wakil Ketua", Nama: "M. Syahril Ramadhan"},
		{Jabatan: "Sekretaris 1", Nama: "Yusufi Noviati"},
		{Jabatan: "Sekretaris 2", Nama: "Devita Rizqi Maulida"},
		{Jabatan: "Bendahara 1", Nama: "Devi Mustika"},
		{Jabatan: "Bendahara 2", Nama: "Nabila Juanita Enas"},
		{Jabatan: "Ketua PSDI", Nama: "Fitri Amelia"},
		{Jabatan: "Anggota PSDI", Nama: "Mohamad Royan Ramadani"},
		{Jabatan: "Anggota PSDI", Nama: "Mita Nur Istiyani"},
		{Jabatan: "Anggota PSDI", Nama: "Ayun Farichah Khoniaro"},
		{Jabatan: "Anggota PSDI", Nama: "Ika Ismatul Hawa"},
		{Jabatan: "Ketua KBA", Nama: "Amalia Putri Setya Aryana"},
		{Jabatan: "Anggota KBA", Nama: "Nirma Ayu Suryaningtyas"},
		{Jabatan: "Anggota KBA", Nama: "Khopsa Chanda Syaputri"},
		{Jabatan: "Anggota KBA", Nama: "Lina Khotimah"},
		{Jabatan: "Anggota KBA", Nama: "Zidan Reffa Pratama"},
		{Jabatan: "Ketua Departemen Riset", Nama: "Selvalentina Rista Anggita"},
		{Jabatan: "Anggota Departemen Riset", Nama: "Muhammad Rif'an"},
		{Jabatan: "Anggota Departemen Riset", Nama: "Azzahra Lailatun Nahdi"},
		{Jabatan: "Anggota Departemen Riset", Nama: "Rina Tisna Nurasih"},
		{Jabatan: "Anggota Departemen Riset", Nama: "Diandra Nikenita Azalia Islami"},
		{Jabatan: "Ketua Departemen MEDPRO", Nama: "Maheswari Pasa Putri Syamsudar"},
		{Jabatan: "Anggota Departemen MEDPRO", Nama: "Nabil Surya Al Hakim"},
		{Jabatan: "Anggota Departemen MEDPRO", Nama: "Alfico Agra Rashya Valentino"},
		{Jabatan: "Anggota Departemen MEDPRO", Nama: "Aninda Rizqi Amelia"},
		{Jabatan: "Anggota Departemen MEDPRO", Nama: "Sifa Sabrina"},
	}
}

func seedContact() org.Contact {
	return org.Contact{
		Email:     "hmpssainta@gmail.com",
		Instagram: "@hmpsssd.uingusdur",
		Website:   "sainsdata-febi.uingusdur.ac.id/",
		Whatsapp:  "085866768572",
	}
}
