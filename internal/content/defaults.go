package content

// Default returns the portfolio content shipped with the binary. Each call returns a
// fresh copy, so callers may modify it.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:        "Anderson Silva",
			Headline:    "Desenvolvedor Fullstack",
			Location:    "Ribeirão Preto - São Paulo",
			Phone:       "(16) 98823-1969",
			CVURL:       "#",
			GitHubURL:   "#",
			LinkedInURL: "#",
			MailURL:     "#",
			About: []string{
				`Profissional com ampla experiência em desenvolvimento fullstack, atuando na criação,
manutenção e otimização de sistemas web e e-commerce. Possui expertise em diversas
tecnologias front-end e back-end, com foco em alta performance, segurança e
escalabilidade.`,
				`Atualmente, atua no setor de suporte da Alpina Digital, garantindo o bom funcionamento
de sistemas, prestando atendimento técnico e solucionando problemas em plataformas de
e-commerce e aplicações web.`,
			},
			Year: "2024",
		},
		Skills: []SkillGroup{
			{
				Category: "Frameworks e Linguagens",
				Icon:     "code",
				Skills:   []string{"Laravel", "CodeIgniter", "Spring Boot", "Symfony", "Next.js", "PHP", "Python", "JavaScript", "Node.js", "Java"},
			},
			{
				Category: "Front-end",
				Icon:     "globe",
				Skills:   []string{"HTML", "CSS", "JavaScript", "React", "Tailwind CSS", "Bootstrap", "CodyHouse"},
			},
			{
				Category: "Banco de Dados",
				Icon:     "database",
				Skills:   []string{"MySQL", "PostgreSQL", "SQL Server", "SQLite", "Redis"},
			},
			{
				Category: "E-commerce & CMS",
				Icon:     "shopping-bag",
				Skills:   []string{"WooCommerce", "Shopify", "PrestaShop", "WordPress", "Moodle"},
			},
		},
		Projects: []Project{
			{
				Title:        "E-commerce Dashboard",
				Description:  "Sistema de gestão para e-commerce com painel administrativo completo. Inclui gestão de produtos, pedidos, clientes e relatórios de vendas.",
				Technologies: []string{"Laravel", "MySQL", "React", "TypeScript", "Redis"},
				RepoURL:      "#",
				DemoURL:      "#",
			},
			{
				Title:        "Sistema de Gestão de Cursos",
				Description:  "Plataforma LMS para gerenciamento de cursos online. Suporta múltiplos tipos de conteúdo, sistema de avaliação e certificados automáticos.",
				Technologies: []string{"PHP", "CodeIgniter", "PostgreSQL", "jQuery", "AWS"},
				RepoURL:      "#",
				DemoURL:      "#",
			},
			{
				Title:        "Bot Discord Multifuncional",
				Description:  "Bot para Discord com funcionalidades de moderação, música, jogos e integração com APIs externas. Inclui sistema de níveis e economia virtual.",
				Technologies: []string{"Python", "Discord.py", "MongoDB", "REST APIs"},
				RepoURL:      "#",
				DemoURL:      "#",
			},
		},
		Experience: []Experience{
			{
				Company: "Alpina Digital",
				Role:    "Desenvolvedor Fullstack",
				Period:  "09/2024 - Presente",
				Responsibilities: []string{
					"Manutenção e correção de problemas em sistemas, e-commerces e aplicativos",
					"Atendimento a chamados de suporte, fornecendo assistência técnica e solucionando problemas de clientes",
					"Otimização de desempenho de sites e plataformas, ajustando códigos e bancos de dados",
					"Integração e configuração de ferramentas, incluindo APIs, gateways de pagamento e automação de marketing",
					"Documentação e treinamento de processos técnicos para clientes e equipe interna",
					"Monitoramento e prevenção de falhas em sistemas e implementação de medidas de segurança",
					"Colaboração com equipes multidisciplinares para garantir que as soluções atendam aos requisitos técnicos e de UX",
				},
			},
			{
				Company: "Nepuga",
				Role:    "Desenvolvedor Fullstack",
				Period:  "01/2023 - 09/2024",
				Responsibilities: []string{
					"Desenvolvimento e manutenção de aplicações web, garantindo estabilidade e eficiência nos sistemas",
					"Implementação de novas funcionalidades e correção de bugs conforme as necessidades do negócio",
					"Integração de APIs e otimização de processos, colaborando com a equipe de desenvolvimento para melhor desempenho",
					"Desenvolvimento de bots para Discord utilizando Python, automatizando tarefas e interações",
					"Atuação com WordPress, PHP e Moodle, criando e aprimorando funcionalidades para plataformas educacionais",
				},
			},
			{
				Company: "SellersFlow",
				Role:    "Desenvolvedor Fullstack",
				Period:  "02/2022 - 01/2023",
				Responsibilities: []string{
					"Desenvolvimento de soluções personalizadas para e-commerce, aprimorando funcionalidades e escalabilidade",
					"Manutenção e atualização de sistemas existentes, garantindo segurança e eficiência",
					"Implementação de novas funcionalidades e suporte técnico para a equipe, otimizando fluxos de trabalho",
					"Desenvolvimento de lojas utilizando WooCommerce, Shopify e PrestaShop, adaptando soluções para diferentes necessidades de mercado",
				},
			},
		},
		Education: []Education{
			{Course: "Análise e Desenvolvimento de Sistemas", Institution: "Estácio", Year: "2025"},
			{Course: "Desenvolvimento de Sistemas", Institution: "Etec José Martimiano da Silva", Year: "2024"},
		},
	}
}
